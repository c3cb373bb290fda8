package services

import (
	"fmt"
	"log"
	"strings"

	"owsb-app/config"
	"owsb-app/models"

	"gopkg.in/gomail.v2"
)

// Notifier mails the finance inbox when a purchase order is issued and
// when a payment is created. Failures are logged, the workflow never
// blocks on mail.
type Notifier struct{}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) POIssued(po models.PurchaseOrder) {
	subject := fmt.Sprintf("Purchase Order %s issued", po.ID)
	body := fmt.Sprintf(`
		<h3>Purchase Order %s</h3>
		<p>Requisition: %s</p>
		<p>Item: %s (%s), quantity %d</p>
		<p>Total: RM %s, required by %s</p>
	`, po.ID, po.RequisitionID, po.ItemName, po.ItemCode, po.Quantity, po.TotalPrice, po.RequiredBy)
	n.send(subject, body)
}

func (n *Notifier) PaymentCreated(p models.Payment) {
	subject := fmt.Sprintf("Payment %s awaiting processing", p.ID)
	body := fmt.Sprintf(`
		<h3>Payment %s</h3>
		<p>Purchase order: %s</p>
		<p>Supplier: %s (%s)</p>
		<p>Amount: RM %s</p>
	`, p.ID, p.PONumber, p.SupplierName, p.SupplierID, p.TotalPrice)
	n.send(subject, body)
}

func (n *Notifier) send(subject, body string) {
	if config.SMTPHost == "" || config.MailTo == "" {
		return
	}
	toEmails := strings.Split(config.MailTo, ",")

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.MailFrom)
	msg.SetHeader("To", toEmails...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	go func() {
		dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
		if err := dialer.DialAndSend(msg); err != nil {
			log.Println("Failed to send notification mail:", err)
		}
	}()
}
