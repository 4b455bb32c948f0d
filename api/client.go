package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/codearena/arenabot/interfaces"
	"github.com/codearena/arenabot/utils"
)

// RequestError 백엔드가 실패 상태 코드를 반환했을 때의 오류입니다
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

// errorEnvelope 백엔드 실패 응답의 본문 형식입니다
type errorEnvelope struct {
	Message string `json:"message"`
}

// RequestOptions 단일 요청의 구성 옵션입니다.
// Token이 참이면 세션의 액세스 토큰을 Authorization 헤더로 붙입니다.
// Multipart가 참이면 Body의 필드를 multipart 폼으로 인코딩합니다.
type RequestOptions struct {
	Method    string
	Params    map[string]string
	Body      interface{}
	Headers   map[string]string
	Token     bool
	Multipart bool
}

// ArenaClient 대회 백엔드 API와 통신하는 전송 계층 클라이언트입니다.
// 요청은 재시도 없이 한 번만 전송되며, 취소는 ctx를 통해 전파됩니다.
type ArenaClient struct {
	client  *http.Client
	baseURL string
	session interfaces.SessionStore
}

// NewArenaClient 새로운 ArenaClient 인스턴스를 생성합니다
func NewArenaClient(baseURL string, session interfaces.SessionStore) *ArenaClient {
	utils.Debug("Creating new arena API client for %s", baseURL)
	return &ArenaClient{
		client:  &http.Client{},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		session: session,
	}
}

// Request 공통 HTTP 요청 로직.
// 세션에 액세스 토큰이 있으면 Authorization 헤더를 붙이고, 없으면 헤더 없이 전송합니다.
func (client *ArenaClient) Request(ctx context.Context, endpoint string, opts RequestOptions) ([]byte, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	fullURL := client.baseURL + endpoint
	if len(opts.Params) > 0 {
		query := url.Values{}
		for key, value := range opts.Params {
			query.Set(key, value)
		}
		fullURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	contentType := ""
	if opts.Body != nil {
		if opts.Multipart {
			reader, formType, err := encodeMultipart(opts.Body)
			if err != nil {
				return nil, err
			}
			bodyReader = reader
			contentType = formType
		} else {
			raw, err := json.Marshal(opts.Body)
			if err != nil {
				return nil, fmt.Errorf("요청 본문 직렬화 실패: %w", err)
			}
			bodyReader = bytes.NewReader(raw)
			contentType = "application/json"
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}
	if opts.Token {
		if token, ok := client.session.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	utils.Debug("Arena request: %s %s", method, endpoint)

	resp, err := client.client.Do(req)
	if err != nil {
		utils.Warn("Arena request failed for %s %s: %v", method, endpoint, err)
		return nil, fmt.Errorf("%s 요청 실패: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.Error("Failed to read response body for %s: %v", endpoint, err)
		return nil, fmt.Errorf("응답 읽기 실패: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := "API 요청 중 오류가 발생했습니다."
		var envelope errorEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
			message = envelope.Message
		}
		utils.Warn("Arena returned non-2xx status for %s %s: %d (%s)", method, endpoint, resp.StatusCode, message)
		return nil, &RequestError{
			Status:  resp.StatusCode,
			Message: message,
		}
	}

	return body, nil
}

// encodeMultipart 본문 필드를 multipart 폼으로 인코딩합니다.
// 문자열이 아닌 값은 문자열로 변환하여 기록합니다.
func encodeMultipart(body interface{}) (io.Reader, string, error) {
	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)

	switch fields := body.(type) {
	case map[string]string:
		for key, value := range fields {
			if err := writer.WriteField(key, value); err != nil {
				return nil, "", fmt.Errorf("폼 필드 기록 실패: %w", err)
			}
		}
	case map[string]interface{}:
		for key, value := range fields {
			if err := writer.WriteField(key, fmt.Sprint(value)); err != nil {
				return nil, "", fmt.Errorf("폼 필드 기록 실패: %w", err)
			}
		}
	default:
		return nil, "", fmt.Errorf("multipart 본문은 필드 맵이어야 합니다: %T", body)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("폼 인코딩 종료 실패: %w", err)
	}
	return buf, writer.FormDataContentType(), nil
}
