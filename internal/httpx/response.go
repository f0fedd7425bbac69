package httpx

import (
	"encoding/json"
	"net/http"
)

// failureBody is the uniform failure envelope returned by every error
// response. Validation failures additionally carry the per-field list.
type failureBody struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	var body []byte
	var err error
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			// best-effort error response; avoid writing partial JSON
			http.Error(w, `{"success":false,"status":500,"message":"Something went wrong"}`, http.StatusInternalServerError)
			return
		}
	} else {
		body = []byte("null")
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		// nothing we can do at this point
		_ = err
	}
}

// Error writes the failure envelope {success:false, status, message}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, failureBody{Success: false, Status: status, Message: message})
}

// ValidationError writes a 400 failure envelope carrying the structured
// {field, message} list.
func ValidationError(w http.ResponseWriter, errs any) {
	JSON(w, http.StatusBadRequest, failureBody{
		Success: false,
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Errors:  errs,
	})
}
