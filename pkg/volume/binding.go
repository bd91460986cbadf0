package volume

import (
	"weak"

	"github.com/df07/go-volume-property/pkg/lut"
)

// binding is the non-owning link from a Property to the table it was last
// given. It never keeps the table alive.
type binding struct {
	table weak.Pointer[lut.LookupTable]
	sub   lut.SubscriptionID
	bound bool
}

// live returns the bound table, or nil when nothing is bound or the table
// has been released or collected
func (b *binding) live() *lut.LookupTable {
	if !b.bound {
		return nil
	}
	t := b.table.Value()
	if t == nil || t.Released() {
		return nil
	}
	return t
}

// attach points the binding at t with subscription sub. The previous
// binding must already be released.
func (b *binding) attach(t *lut.LookupTable, sub lut.SubscriptionID) {
	b.table = weak.Make(t)
	b.sub = sub
	b.bound = true
}

// release cancels the subscription if the table is still around and clears
// the binding. Safe to call any number of times.
func (b *binding) release() {
	if t := b.live(); t != nil && b.sub != 0 {
		t.Unsubscribe(b.sub)
	}
	b.table = weak.Pointer[lut.LookupTable]{}
	b.sub = 0
	b.bound = false
}
