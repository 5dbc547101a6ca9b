package notifications

// Причины, по которым отправка была пропущена
const (
	ReasonNoEmail       = "no email provided"
	ReasonNotConfigured = "mailer not configured"
)

// Result результат попытки отправки уведомления.
// Отправка никогда не возвращает ошибку наружу: любой исход описывается Result.
type Result struct {
	Sent   bool   `json:"sent"`
	To     string `json:"to,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func sent(to string) Result {
	return Result{Sent: true, To: to}
}

func skipped(reason string) Result {
	return Result{Sent: false, Reason: reason}
}

func failed(to string, err error) Result {
	return Result{Sent: false, To: to, Reason: err.Error()}
}
