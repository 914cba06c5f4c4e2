package alert

// Notifier delivers a single notification. Implementations are external
// collaborators; a delivery failure is reported to the caller and never
// rolls back the inventory mutation that triggered it.
type Notifier interface {
	Send(recipient, subject, body string) error
}
