package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/api/response"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/dependencies/mocks"
)

type IdentityHandlerSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	handler *IdentityHandler
}

func TestIdentityHandlerSuite(t *testing.T) {
	suite.Run(t, new(IdentityHandlerSuite))
}

func (s *IdentityHandlerSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.handler = NewIdentityHandler(s.random)
}

func (s *IdentityHandlerSuite) create() *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/identity", nil)
	rr := httptest.NewRecorder()
	s.handler.Create(rr, req)
	return rr
}

func (s *IdentityHandlerSuite) TestCreateReturnsGeneratedToken() {
	s.random.QueueString("k7f2m9x1q8w3e6r5t4y0u2i7o1")

	rr := s.create()
	s.Require().Equal(http.StatusCreated, rr.Code)

	var resp response.IdentityResponse
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	s.Equal("k7f2m9x1q8w3e6r5t4y0u2i7o1", resp.Identity)
}

func (s *IdentityHandlerSuite) TestCreateIssuesDistinctTokens() {
	s.random.QueueString("aaaaaaaaaaaaaaaaaaaaaaaaaa", "bbbbbbbbbbbbbbbbbbbbbbbbbb")

	first := s.create()
	second := s.create()

	var resp1, resp2 response.IdentityResponse
	s.Require().NoError(json.Unmarshal(first.Body.Bytes(), &resp1))
	s.Require().NoError(json.Unmarshal(second.Body.Bytes(), &resp2))
	s.NotEqual(resp1.Identity, resp2.Identity)
}
