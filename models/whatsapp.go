package models

import "time"

// WhatsApp Cloud API webhook payload shapes. Only the fields this service
// reads are modelled; the raw payload carries much more.

type WhatsAppWebhookData struct {
	Object string          `json:"object"`
	Entry  []WhatsAppEntry `json:"entry"`
}

type WhatsAppEntry struct {
	ID      string           `json:"id"`
	Changes []WhatsAppChange `json:"changes"`
}

type WhatsAppChange struct {
	Field string        `json:"field"`
	Value WhatsAppValue `json:"value"`
}

type WhatsAppValue struct {
	MessagingProduct string            `json:"messaging_product"`
	Metadata         WhatsAppMetadata  `json:"metadata"`
	Messages         []WhatsAppMessage `json:"messages,omitempty"`
	Statuses         []WhatsAppStatus  `json:"statuses,omitempty"`
	Contacts         []WhatsAppContact `json:"contacts,omitempty"`
}

type WhatsAppMetadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type WhatsAppMessage struct {
	From      string        `json:"from"`
	ID        string        `json:"id"`
	Timestamp string        `json:"timestamp"`
	Type      string        `json:"type"`
	Text      *WhatsAppText `json:"text,omitempty"`
}

type WhatsAppText struct {
	Body string `json:"body"`
}

type WhatsAppContact struct {
	Profile WhatsAppProfile `json:"profile"`
	WaID    string          `json:"wa_id"`
}

type WhatsAppProfile struct {
	Name string `json:"name"`
}

type WhatsAppStatus struct {
	ID          string          `json:"id"`
	RecipientID string          `json:"recipient_id"`
	Status      string          `json:"status"`
	Timestamp   string          `json:"timestamp"`
	Errors      []WhatsAppError `json:"errors,omitempty"`
}

type WhatsAppError struct {
	Code    int    `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// WhatsAppSendMessage is the outbound text-message payload.
type WhatsAppSendMessage struct {
	MessagingProduct string        `json:"messaging_product"`
	RecipientType    string        `json:"recipient_type"`
	To               string        `json:"to"`
	Type             string        `json:"type"`
	Text             *WhatsAppText `json:"text,omitempty"`
}

// WhatsAppServiceStatus is reported by the admin status endpoint.
type WhatsAppServiceStatus struct {
	Enabled             bool      `json:"enabled"`
	LastMessageReceived time.Time `json:"last_message_received"`
	MessageCountToday   int       `json:"message_count_today"`
}
