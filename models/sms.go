package models

import "encoding/xml"

// TwilioInboundSMS is the form payload Twilio posts to the SMS webhook.
type TwilioInboundSMS struct {
	MessageSID string `form:"MessageSid"`
	AccountSID string `form:"AccountSid"`
	From       string `form:"From"`
	To         string `form:"To"`
	Body       string `form:"Body"`
	NumMedia   string `form:"NumMedia"`
}

// TwiMLResponse is the XML reply returned to Twilio from the SMS webhook.
type TwiMLResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message,omitempty"`
}
