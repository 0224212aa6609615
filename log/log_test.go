package log

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nextep-cli/nextep/filesystem"
	"github.com/nextep-cli/nextep/key"
	"github.com/nextep-cli/nextep/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Emissions are discarded without a log file", func() {
			Infof("nothing %d", 1)
			WithField("show", "lost").Warnf("dropped")
			So(enabled, ShouldBeFalse)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, false)
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)

		Convey("Entries land in today's log file with their fields", func() {
			WithField("show", "the-expanse").WithField("attempt", 2).Infof("fetched %s", "page")

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)

			content := string(data)
			So(content, ShouldContainSubstring, "fetched page")
			So(strings.Contains(content, "show=the-expanse"), ShouldBeTrue)
			So(content, ShouldContainSubstring, "attempt=2")
		})
	})
}
