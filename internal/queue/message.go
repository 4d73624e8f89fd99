package queue

import "encoding/json"

// MessageVersion is the payload version written by this build.
const MessageVersion = 1

// Message asks a worker to analyze one resume against one job description.
// All keys refer to objects in the configured object store.
type Message struct {
	JobID             string `json:"jobId"`
	RequestID         string `json:"requestId"`
	ResumeKey         string `json:"resumeKey"`
	JobDescriptionKey string `json:"jobDescriptionKey"`
	ResultKey         string `json:"resultKey"`
	EnqueuedAt        string `json:"enqueuedAt"`
	Version           int    `json:"version"`
}

// EncodeMessage returns the JSON representation of a message.
func EncodeMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

// DecodeMessage parses a JSON payload into a Message.
func DecodeMessage(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}
