package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateInvoiceNo generates a unique invoice number for a pharmacy sale
func GenerateInvoiceNo() string {
	return "INV-" + strings.ToUpper(uuid.New().String()[:8])
}

// GeneratePurchaseNo generates a unique purchase order number
func GeneratePurchaseNo() string {
	return "PO-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateClaimNo generates a unique insurance claim number
func GenerateClaimNo() string {
	return "CLM-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateMRN generates a medical record number for a new patient.
// Format: MRN-YYYY-XXXXXX where XXXXXX comes from a fresh UUID.
func GenerateMRN() string {
	return fmt.Sprintf("MRN-%d-%s", time.Now().Year(), strings.ToUpper(uuid.New().String()[:6]))
}
