package common

import (
	"fmt"

	"github.com/cihub/seelog"
)

var Logger seelog.LoggerInterface = seelog.Disabled

var logLevels = map[string]bool{
	"trace":    true,
	"debug":    true,
	"info":     true,
	"warn":     true,
	"error":    true,
	"critical": true,
}

func InitLog(logFile, level string) (seelog.LoggerInterface, error) {
	if level == "" {
		level = "info"
	}
	if !logLevels[level] {
		return nil, fmt.Errorf("unknown log level[%v]", level)
	}

	var output string
	if len(logFile) == 0 {
		output = `<console />`
	} else {
		output = `<file path="` + logFile + `"/>`
	}
	logConfig := `
		<seelog minlevel="` + level + `">
			<outputs formatid="main">
				` + output + `
			</outputs>
			<formats>
				<format id="main" format="%LEVEL %Date-%Time] (%File:%Line): %Msg%n"/>
			</formats>
		</seelog>`
	return seelog.LoggerFromConfigAsBytes([]byte(logConfig))
}
