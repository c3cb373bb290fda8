package models

import "strings"

// RequisitionStatus is the lifecycle state of a purchase requisition.
type RequisitionStatus string

const (
	RequisitionPending   RequisitionStatus = "Pending"
	RequisitionApproved  RequisitionStatus = "Approved"
	RequisitionRejected  RequisitionStatus = "Rejected"
	RequisitionCancelled RequisitionStatus = "Cancelled"
)

func ParseRequisitionStatus(s string) (RequisitionStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return RequisitionPending, true
	case "approved":
		return RequisitionApproved, true
	case "rejected":
		return RequisitionRejected, true
	case "cancelled":
		return RequisitionCancelled, true
	}
	return "", false
}

// Terminal reports whether no further decision can be applied.
func (s RequisitionStatus) Terminal() bool {
	return s != RequisitionPending
}

// PurchaseOrderStatus is the lifecycle state of a purchase order.
type PurchaseOrderStatus string

const (
	POIssued    PurchaseOrderStatus = "Issued"
	POApproved  PurchaseOrderStatus = "Approved"
	PORejected  PurchaseOrderStatus = "Rejected"
	PODelivered PurchaseOrderStatus = "Delivered"
	POVerified  PurchaseOrderStatus = "Verified"
)

func ParsePurchaseOrderStatus(s string) (PurchaseOrderStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "issued":
		return POIssued, true
	case "approved":
		return POApproved, true
	case "rejected":
		return PORejected, true
	case "delivered":
		return PODelivered, true
	case "verified":
		return POVerified, true
	}
	return "", false
}

// Equals compares two stored status values ignoring case, so rows written
// by older tools that lowercased the column still match.
func (s PurchaseOrderStatus) Equals(raw string) bool {
	return strings.EqualFold(string(s), strings.TrimSpace(raw))
}

// PaymentStatus is the settlement state of a payment record.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return PaymentPending, true
	case "paid":
		return PaymentPaid, true
	}
	return "", false
}
