package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/ytget/yt-downloader-cli/internal/filesystem"
	"github.com/ytget/yt-downloader-cli/internal/key"
)

func TestSetup(t *testing.T) {
	Convey("Config setup", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		v := viper.New()

		Convey("Should succeed without a config file and populate defaults", func() {
			So(setup(v, "/cfg"), ShouldBeNil)
			for name := range Default {
				So(v.IsSet(name), ShouldBeTrue)
			}
			So(v.GetString(key.DownloadFormat), ShouldEqual, DefaultFormat)
		})

		Convey("Should read values from the TOML file", func() {
			content := "[download]\nquality = \"720p\"\non_error = \"abort\"\n"
			So(filesystem.API().WriteFile("/cfg/yt-downloader.toml", []byte(content), 0o644), ShouldBeNil)

			So(setup(v, "/cfg"), ShouldBeNil)
			So(v.GetString(key.DownloadQuality), ShouldEqual, "720p")
			So(NewSettings(v).GetOnError(), ShouldEqual, OnErrorAbort)
		})

		Convey("Should prefer environment variables", func() {
			t.Setenv("YT_DOWNLOADER_DOWNLOAD_FORMAT", "webm")
			So(setup(v, "/cfg"), ShouldBeNil)
			So(v.GetString(key.DownloadFormat), ShouldEqual, "webm")
		})

		Convey("Field env names use the app prefix", func() {
			f := Default[key.DownloadOnError]
			So(f.Env(), ShouldEqual, "YT_DOWNLOADER_DOWNLOAD_ON_ERROR")
		})

		Convey("Resolve reads the value from the given settings", func() {
			v.Set(key.DownloadFormat, "mkv")
			f := Default[key.DownloadFormat]
			fv := f.Resolve(NewSettings(v))
			So(fv.Value, ShouldEqual, "mkv")
			So(fv.Default, ShouldEqual, DefaultFormat)
			So(fv.Env, ShouldEqual, "YT_DOWNLOADER_DOWNLOAD_FORMAT")
		})

		Convey("Fields are sorted by key", func() {
			fields := Fields()
			So(len(fields), ShouldEqual, len(Default))
			for i := 1; i < len(fields); i++ {
				So(fields[i-1].Key < fields[i].Key, ShouldBeTrue)
			}
		})
	})
}
