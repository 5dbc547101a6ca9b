package login

// Request учетные данные для входа
type Request struct {
	Email    string
	Password string
}

// Response результат успешного входа.
// Token - непрозрачный bearer-токен, без серверного состояния.
type Response struct {
	Token string
	Name  string
	Email string
}
