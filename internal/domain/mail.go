package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type EventBillingMailData struct {
	ManagerName string            `json:"managerName"`
	EventName   string            `json:"eventName"`
	Location    string            `json:"location"`
	FromDate    string            `json:"fromDate"`
	ToDate      string            `json:"toDate"`
	Positions   []BillingPosition `json:"positions"`
}

type BillingPosition struct {
	Name     string       `json:"name"`
	Days     []BillingDay `json:"days"`
}

type BillingDay struct {
	FromDate   string   `json:"fromDate"`
	ToDate     string   `json:"toDate"`
	FromTime   string   `json:"fromTime"`
	ToTime     string   `json:"toTime"`
	Quantity   int32    `json:"quantity"`
	HourlyRate *float64 `json:"hourlyRate"`
}

type EventUpdatedMailData struct {
	FullName  string `json:"fullName"`
	EventName string `json:"eventName"`
}

type PositionCanceledMailData struct {
	FullName  string `json:"fullName"`
	EventName string `json:"eventName"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}
