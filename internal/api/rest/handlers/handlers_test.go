package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/nathdadu26/viralbox-uploader-bot/internal/transport/telegram"
)

type recordingProcessor struct {
	mu      sync.Mutex
	starts  int
	setKeys int
	uploads int
	args    []string
}

func (p *recordingProcessor) Start(_ context.Context, _ *telegram.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.starts++
}

func (p *recordingProcessor) SetAPIKey(_ context.Context, _ *telegram.Message, args []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setKeys++
	p.args = args
}

func (p *recordingProcessor) Upload(_ context.Context, _ *telegram.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.uploads++
}

type HandlersTestSuite struct {
	suite.Suite
	processor *recordingProcessor
	router    *chi.Mux
	ts        *httptest.Server
	client    *resty.Client
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.processor = &recordingProcessor{}
	updateHandler, _ := InitUpdateHandler(suite.processor, "test_token", zap.NewNop().Sugar())
	suite.router = chi.NewRouter()
	suite.router.Get("/healthz", updateHandler.HandleHealthCheck())
	suite.router.Post("/webhook/{token}", updateHandler.HandleUpdate())
	suite.ts = httptest.NewServer(suite.router)
	suite.client = resty.New()
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.ts.Close()
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) TestHealthCheck() {
	res, err := suite.client.R().Get(suite.ts.URL + "/healthz")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
	assert.Equal(suite.T(), "OK", string(res.Body()))
}

func (suite *HandlersTestSuite) TestWrongTokenIsNotFound() {
	res, err := suite.client.R().
		SetBody(`{"update_id":1}`).
		Post(suite.ts.URL + "/webhook/other_token")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusNotFound, res.StatusCode())
	assert.Equal(suite.T(), 0, suite.processor.starts)
}

func (suite *HandlersTestSuite) TestDispatchStart() {
	res, err := suite.client.R().
		SetBody(`{"update_id":1,"message":{"message_id":42,"from":{"id":555,"first_name":"Tester"},"chat":{"id":555},"text":"/start"}}`).
		Post(suite.ts.URL + "/webhook/test_token")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
	assert.Equal(suite.T(), 1, suite.processor.starts)
}

func (suite *HandlersTestSuite) TestDispatchSetAPIKey() {
	res, err := suite.client.R().
		SetBody(`{"update_id":2,"message":{"message_id":43,"from":{"id":555,"first_name":"Tester"},"chat":{"id":555},"text":"/set_api some_api_key"}}`).
		Post(suite.ts.URL + "/webhook/test_token")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
	assert.Equal(suite.T(), 1, suite.processor.setKeys)
	assert.Equal(suite.T(), []string{"some_api_key"}, suite.processor.args)
}

func (suite *HandlersTestSuite) TestDispatchMediaUpload() {
	res, err := suite.client.R().
		SetBody(`{"update_id":3,"message":{"message_id":44,"from":{"id":555,"first_name":"Tester"},"chat":{"id":555},"document":{"file_id":"abc"}}}`).
		Post(suite.ts.URL + "/webhook/test_token")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
	assert.Equal(suite.T(), 1, suite.processor.uploads)
}

func (suite *HandlersTestSuite) TestNonMediaTextIsIgnored() {
	res, err := suite.client.R().
		SetBody(`{"update_id":4,"message":{"message_id":45,"from":{"id":555,"first_name":"Tester"},"chat":{"id":555},"text":"hello"}}`).
		Post(suite.ts.URL + "/webhook/test_token")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
	assert.Equal(suite.T(), 0, suite.processor.uploads)
	assert.Equal(suite.T(), 0, suite.processor.starts)
}

func (suite *HandlersTestSuite) TestMalformedBody() {
	res, err := suite.client.R().
		SetBody("{not json").
		Post(suite.ts.URL + "/webhook/test_token")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, res.StatusCode())
}
