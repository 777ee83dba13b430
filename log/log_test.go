package log

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cinemcp/cinemcp/filesystem"
	"github.com/cinemcp/cinemcp/key"
	"github.com/cinemcp/cinemcp/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging settings", t, func() {
		Reset(func() {
			viper.Set(key.LogsWrite, false)
			viper.Set(key.LogsLevel, "warn")
			logrus.SetOutput(os.Stderr)
		})

		Convey("It writes to stderr by default", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(logrus.StandardLogger().Out, ShouldEqual, os.Stderr)
		})

		Convey("It falls back to warn on an unknown level", func() {
			viper.Set(key.LogsLevel, "chatty")
			So(Setup(), ShouldBeNil)
			So(logrus.GetLevel(), ShouldEqual, logrus.WarnLevel)
		})

		Convey("It creates a daily log file when writing is enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "info")
			So(Setup(), ShouldBeNil)

			Info("hello")
			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeTrue)
		})
	})
}
