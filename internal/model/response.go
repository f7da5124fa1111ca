package model

// Response is the envelope every endpoint replies with. Data is null
// on failure and carries the payload on success.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func Success(data any) Response {
	return Response{
		Message: "success",
		Data:    data,
	}
}

func Failed(message string) Response {
	return Response{
		Message: message,
	}
}
