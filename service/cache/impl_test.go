package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nftbay/auction-api/base/ctx"
	"github.com/nftbay/auction-api/service/cache/provider/primitive"
)

var mockCTX = ctx.Background()

type testsuite struct {
	suite.Suite
	service Service
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.service = New(ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "test",
		Cache: primitive.NewPrimitive("test", 1),
	})
}

type payload struct {
	Value string `json:"value"`
}

func (t *testsuite) TestGetMiss() {
	res := payload{}
	t.Equal(ErrNotFound, t.service.Get(mockCTX, "missing", &res))
}

func (t *testsuite) TestSetAndGet() {
	t.NoError(t.service.Set(mockCTX, "key", &payload{Value: "abc"}))

	res := payload{}
	t.NoError(t.service.Get(mockCTX, "key", &res))
	t.Equal("abc", res.Value)
}

func (t *testsuite) TestGetByFunc() {
	calls := 0
	getter := func() (interface{}, error) {
		calls++
		return &payload{Value: "generated"}, nil
	}

	res := payload{}
	t.NoError(t.service.GetByFunc(mockCTX, "key", &res, getter))
	t.Equal("generated", res.Value)
	t.Equal(1, calls)

	// second read is served from cache
	res = payload{}
	t.NoError(t.service.GetByFunc(mockCTX, "key", &res, getter))
	t.Equal("generated", res.Value)
	t.Equal(1, calls)
}

func (t *testsuite) TestDel() {
	t.NoError(t.service.Set(mockCTX, "key", &payload{Value: "abc"}))
	t.NoError(t.service.Del(mockCTX, "key"))

	res := payload{}
	t.Equal(ErrNotFound, t.service.Get(mockCTX, "key", &res))
}
