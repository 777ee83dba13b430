package network

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinemcp/cinemcp/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	Convey("Given the shared client", t, func() {
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("User-Agent")
		}))
		Reset(srv.Close)

		Convey("It stamps the application user agent", func() {
			resp, err := Client.Get(srv.URL)
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(got, ShouldEqual, constant.UserAgent)
		})

		Convey("It keeps a caller supplied user agent", func() {
			req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
			req.Header.Set("User-Agent", "custom")
			resp, err := Client.Do(req)
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(got, ShouldEqual, "custom")
		})
	})
}
