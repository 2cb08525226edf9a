package protocol

// AckSentinel is the payload element 0 marker that separates an
// acknowledgement reply from a named event. This is a convention of
// the client, mirrored on the outbound side by the trailing
// "ACK:<id>" argument of an emit that wants a reply.
const AckSentinel = "ACK"

// Message is the closed set of application messages an event packet
// can carry.
type Message interface{ message() }

// EventMessage is a fire-and-forget named event with positional
// arguments.
type EventMessage struct {
	Event string
	Args  []interface{}
}

// AckMessage is a server reply correlated to an earlier emit.
type AckMessage struct {
	AckID    string
	Response interface{}
}

func (EventMessage) message() {}
func (AckMessage) message()   {}

// Route decides which kind of message an event payload is. A payload
// starting with the ack sentinel is a reply: element 1 is the
// correlation id and element 2, when present, the response value.
// Anything else is an event named by element 0, with the remaining
// elements as its arguments in order.
func Route(payload []interface{}) (Message, error) {
	if len(payload) == 0 {
		return nil, ErrMalformedPacket.F("empty payload array")
	}

	name, ok := payload[0].(string)
	if !ok {
		return nil, ErrMalformedPacket.F("the first payload element is not a string")
	}

	if name == AckSentinel {
		if len(payload) < 2 {
			return nil, ErrMalformedPacket.F("ack reply without an ackID")
		}
		ackID, ok := payload[1].(string)
		if !ok {
			return nil, ErrMalformedPacket.F("ackID is not a string")
		}

		ack := AckMessage{AckID: ackID}
		if len(payload) > 2 {
			ack.Response = payload[2]
		}
		return ack, nil
	}

	return EventMessage{Event: name, Args: payload[1:]}, nil
}
