package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"booking-api/internal/handlers"
	"booking-api/pkg/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Browser preflight never reaches the pipeline.
	if event.HTTPMethod == http.MethodOptions {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusNoContent,
			Headers:    corsHeaders(),
		}, nil
	}

	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize container")
		return internalError(), nil
	}

	req := lambda.FromProxyEvent(event)
	bookingHandler := handlers.NewBookingHandler(container.BookingService)

	var resp *lambda.Response
	switch {
	case req.Method == http.MethodGet:
		resp, err = bookingHandler.HandleGet(ctx, req)
	default:
		resp, err = lambda.NewJSONResponse(http.StatusNotFound, handlers.MessageResponse{
			Message: "Not found",
		})
	}

	if err != nil {
		logrus.WithError(err).Error("Failed to build response")
		return internalError(), nil
	}

	return resp.ToProxyResponse(), nil
}

func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":      "*",
		"Access-Control-Allow-Methods":     "GET, OPTIONS",
		"Access-Control-Allow-Headers":     "Origin, Content-Type, Accept, Authorization",
		"Access-Control-Allow-Credentials": "true",
	}
}

func internalError() events.APIGatewayProxyResponse {
	headers := corsHeaders()
	headers["Content-Type"] = "application/json"
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusInternalServerError,
		Headers:    headers,
		Body:       `{"message": "Internal server error"}`,
	}
}

func main() {
	awslambda.Start(handler)
}
