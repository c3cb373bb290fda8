// controllers/idgen/sequential.go
package idgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Record ID prefixes.
const (
	PrefixUser          = "OW"
	PrefixItem          = "ITM"
	PrefixSupplier      = "SUP"
	PrefixRequisition   = "PR"
	PrefixPurchaseOrder = "PO"
	PrefixPayment       = "PAY"
	PrefixSale          = "SD"
)

// NextSequential returns prefix plus the highest numeric suffix seen in
// existing plus one, zero padded to width. Deleting the latest record
// frees its number; deleting an earlier one does not.
func NextSequential(existing []string, prefix string, width int) string {
	max := 0
	for _, id := range existing {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(id[len(prefix):])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, width, max+1)
}
