package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextSequential(t *testing.T) {
	assert.Equal(t, "PR001", NextSequential(nil, PrefixRequisition, 3))
	assert.Equal(t, "PR002", NextSequential([]string{"PR001"}, PrefixRequisition, 3))
	assert.Equal(t, "PR004", NextSequential([]string{"PR001", "PR003"}, PrefixRequisition, 3))
}

func TestNextSequentialReusesTrailingGap(t *testing.T) {
	// PR002 deleted last: its number is free again
	assert.Equal(t, "PR002", NextSequential([]string{"PR001"}, PrefixRequisition, 3))
	// PR001 deleted in the middle: PR002 still blocks reuse
	assert.Equal(t, "PR003", NextSequential([]string{"PR002"}, PrefixRequisition, 3))
}

func TestNextSequentialIgnoresOtherPrefixes(t *testing.T) {
	ids := []string{"PO005", "ITM009", "PR002"}
	assert.Equal(t, "PR003", NextSequential(ids, PrefixRequisition, 3))
}

func TestNextSequentialIgnoresMalformedSuffix(t *testing.T) {
	assert.Equal(t, "SUP001", NextSequential([]string{"SUPx", "SUP"}, PrefixSupplier, 3))
}

func TestNextSequentialWidthOverflow(t *testing.T) {
	assert.Equal(t, "OW1000", NextSequential([]string{"OW999"}, PrefixUser, 3))
}
