package websocket

import "encoding/json"

// Frame is the JSON shape of every message in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

func Encode(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Frame{Event: event, Data: raw})
}

func Decode(msg []byte) (Frame, error) {
	var f Frame
	err := json.Unmarshal(msg, &f)
	return f, err
}
