package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"

	"rkcp-score/pkg/logger"
)

type RestyClient struct {
	client *resty.Client
	log    *logger.Logger
}

func New(log *logger.Logger, baseURL string, timeout time.Duration) HTTPClient {
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	return &RestyClient{client: client, log: log}
}

// Get performs a GET request with optional query params and decodes the JSON
// body into result.
func (rc *RestyClient) Get(ctx context.Context, endpoint string, queryParams map[string]string, headers map[string]string, result interface{}) (*BaseResponse, error) {
	req := rc.client.R().SetContext(ctx).SetResult(result)

	if queryParams != nil {
		req.SetQueryParams(queryParams)
	}

	if headers != nil {
		req.SetHeaders(headers)
	}

	resp, err := req.Get(endpoint)
	if err != nil {
		return nil, err
	}

	rc.log.DebugContext(ctx, "outbound request",
		logger.StringField("endpoint", endpoint),
		logger.IntField("status_code", resp.StatusCode()),
	)

	return &BaseResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		Headers:    resp.Header(),
	}, nil
}
