package students

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/rpzteam/students/api"
	"github.com/rpzteam/students/internal/models"
)

type Client struct {
	client *resty.Client
}

func NewClient(endpoint string) (*Client, error) {
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, errors.Wrapf(err, "Invalid endpoint %q", endpoint)
	}

	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(time.Second * 10).
		SetRetryCount(3).
		SetHeader("Accept", "application/json")

	// Only idempotent reads are retried.
	client.AddRetryCondition(func(res *resty.Response, err error) bool {
		if res == nil || res.Request == nil || res.Request.Method != http.MethodGet {
			return false
		}
		return err != nil || res.StatusCode() >= http.StatusInternalServerError
	})

	return &Client{client}, nil
}

// StatusError is returned for every non-2xx answer.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.Code, e.Message)
}

func IsNotFound(err error) bool {
	status := &StatusError{}
	return errors.As(err, &status) && status.Code == http.StatusNotFound
}

func checkResponse(res *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if res.IsError() {
		message := res.String()
		if failure, ok := res.Error().(*api.ErrorResponse); ok && len(failure.Error) > 0 {
			message = failure.Error
		}
		return &StatusError{Code: res.StatusCode(), Message: message}
	}
	return nil
}

func (c *Client) ListStudents(ctx context.Context, letter string) ([]models.Student, error) {
	students := make([]models.Student, 0)
	req := c.client.R().
		SetContext(ctx).
		SetResult(&students).
		SetError(&api.ErrorResponse{})
	if len(letter) > 0 {
		req.SetQueryParam("letter", letter)
	}

	if err := checkResponse(req.Get("/student")); err != nil {
		return nil, errors.Wrap(err, "Failed to list students")
	}
	return students, nil
}

func (c *Client) CreateStudent(ctx context.Context, fields *models.StudentFields) (*models.Student, error) {
	student := &models.Student{}
	err := checkResponse(c.client.R().
		SetContext(ctx).
		SetBody(fields).
		SetResult(student).
		SetError(&api.ErrorResponse{}).
		Post("/student"))
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create student")
	}
	return student, nil
}

func (c *Client) DeleteStudent(ctx context.Context, id string) (*models.DeleteResult, error) {
	res := &models.DeleteResult{}
	err := checkResponse(c.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(res).
		SetError(&api.ErrorResponse{}).
		Delete("/student/{id}"))
	if err != nil {
		return nil, errors.Wrap(err, "Failed to delete student")
	}
	return res, nil
}

// UpdateStudent patches the student with the given id. Extra filter values are
// sent as query parameters and narrow the match further.
func (c *Client) UpdateStudent(ctx context.Context, id string, filter url.Values, patch *models.StudentPatch) (*models.Student, error) {
	student := &models.Student{}
	err := checkResponse(c.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetQueryParamsFromValues(filter).
		SetBody(patch).
		SetResult(student).
		SetError(&api.ErrorResponse{}).
		Patch("/student/{id}"))
	if err != nil {
		return nil, errors.Wrap(err, "Failed to update student")
	}
	return student, nil
}
