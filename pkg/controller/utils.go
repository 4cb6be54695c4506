package controller

import "net/http"

// isControllerResponse indicates whether the response plausibly came
// from the controller itself rather than an intermediate proxy
func isControllerResponse(res *http.Response) bool {
	return res.StatusCode <= http.StatusInternalServerError
}

func isSuccessResponse(res *http.Response) bool {
	return res.StatusCode == http.StatusOK
}
