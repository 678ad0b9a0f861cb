package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/learnhub/internal/config"
	"github.com/saulo-duarte/learnhub/internal/container"
)

var adapter *httpadapter.HandlerAdapterV2

func init() {
	c := container.New()
	adapter = httpadapter.NewV2(c.Router(config.App.CORSOrigins))
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
