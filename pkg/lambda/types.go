package lambda

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"

	"booking-api/internal/models"
)

// Request represents a generic HTTP request for serverless functions. The
// Identity field carries the trusted identity already verified by the API
// Gateway authorizer.
type Request struct {
	Method      string                 `json:"method"`
	Path        string                 `json:"path"`
	Headers     map[string]string      `json:"headers"`
	QueryParams map[string]string      `json:"query_params"`
	PathParams  map[string]string      `json:"path_params"`
	Identity    models.RequestIdentity `json:"identity"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// FromProxyEvent converts an API Gateway proxy event to a generic request.
func FromProxyEvent(event events.APIGatewayProxyRequest) *Request {
	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		PathParams:  event.PathParameters,
		Identity:    IdentityFromContext(event.RequestContext),
	}
}

// NewJSONResponse builds a response with a JSON body and the standard header
// set. Every response is JSON and browser-callable, so the content type and
// the permissive CORS headers are attached unconditionally.
func NewJSONResponse(statusCode int, body interface{}) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: statusCode,
		Headers:    standardHeaders(),
		Body:       payload,
	}, nil
}

// ToProxyResponse converts the response back to the API Gateway shape.
func (r *Response) ToProxyResponse() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}

func standardHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                     "application/json",
		"Access-Control-Allow-Origin":      "*",
		"Access-Control-Allow-Credentials": "true",
	}
}
