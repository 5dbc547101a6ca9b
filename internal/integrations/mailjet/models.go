package mailjet

// Message письмо для отправки через Mailjet
type Message struct {
	FromEmail string
	FromName  string
	ToEmail   string
	ToName    string
	Subject   string
	HTMLPart  string
}

// Модели тела запроса Mailjet Send API v3.1

type sendRequest struct {
	Messages []messageV31 `json:"Messages"`
}

type messageV31 struct {
	From     recipient   `json:"From"`
	To       []recipient `json:"To"`
	Subject  string      `json:"Subject"`
	HTMLPart string      `json:"HTMLPart"`
}

type recipient struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

// Модели ответа Mailjet Send API v3.1

type sendResponse struct {
	Messages []messageResult `json:"Messages"`
}

type messageResult struct {
	Status string         `json:"Status"`
	To     []deliveryInfo `json:"To"`
}

type deliveryInfo struct {
	Email     string `json:"Email"`
	MessageID int64  `json:"MessageID"`
}
