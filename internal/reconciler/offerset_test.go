package reconciler_test

import (
	"testing"

	"github.com/MichalMitros/stock-sync/internal/reconciler"
	"github.com/stretchr/testify/assert"
)

func TestUnitOfferSet(t *testing.T) {
	ids := []string{"A", "B", "C", "B"}
	set := reconciler.NewOfferSet(ids)

	assert.True(t, set.Contains("A"), "should contain source ids")
	assert.True(t, set.Take("B"), "should take known id")
	assert.True(t, set.Contains("B"), "should keep second occurrence")
	assert.True(t, set.Take("B"), "should take second occurrence")
	assert.False(t, set.Take("B"), "shouldn't take id twice")
	assert.False(t, set.Take("X"), "shouldn't take unknown id")
	assert.Equal(t, []string{"A", "C"}, set.Remaining(), "should return remaining ids in original order")
	assert.Equal(t, []string{"A", "B", "C", "B"}, ids, "shouldn't modify source ids")
}

func TestUnitOfferSetEmpty(t *testing.T) {
	set := reconciler.NewOfferSet(nil)

	assert.False(t, set.Contains(""), "shouldn't contain anything")
	assert.Empty(t, set.Remaining(), "shouldn't return any id")
}
