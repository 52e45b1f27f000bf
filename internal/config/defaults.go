package config

import "conform/internal/timecode"

const (
	defaultDatabase      = "~/.local/share/conform/conform.db"
	defaultThumbnailDir  = "~/.local/share/conform/thumbnails"
	defaultSnippetDir    = "~/.local/share/conform/snippets"
	defaultLogDir        = "~/.local/share/conform/logs"
	defaultFFmpegBinary  = "ffmpeg"
	defaultFFprobeBinary = "ffprobe"
	defaultFPS           = timecode.DefaultFPS
	defaultThumbnailSize = "96x74"
	defaultLogFormat     = "text"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Database:     defaultDatabase,
			ThumbnailDir: defaultThumbnailDir,
			SnippetDir:   defaultSnippetDir,
			LogDir:       defaultLogDir,
		},
		Media: Media{
			FFmpegBinary:  defaultFFmpegBinary,
			FFprobeBinary: defaultFFprobeBinary,
			FPS:           defaultFPS,
			ThumbnailSize: defaultThumbnailSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
