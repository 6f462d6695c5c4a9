/*
 * Copyright (c) 2024 Yunshan Networks
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package logger

import (
	"os"
	"path"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

const (
	LOG_ROTATION_INTERVAL = 24 * time.Hour      // every day
	LOG_MAX_AGE           = 30 * 24 * time.Hour // every month
	LOG_FORMAT            = "%{time:2006-01-02 15:04:05.000} [%{level:.4s}] %{module} %{shortfile} %{message}"
	LOG_COLOR_FORMAT      = "%{color}%{time:2006-01-02 15:04:05.000} [%{level:.4s}]%{color:reset} %{module} %{shortfile} %{message}"
)

var log = logging.MustGetLogger("logger")

func consoleBackend() logging.Backend {
	return logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stdout, "", 0),
		logging.MustStringFormatter(LOG_COLOR_FORMAT),
	)
}

func InitConsoleLog() {
	logging.SetBackend(consoleBackend())
}

// InitLog writes to stdout and to filePath, rotated daily. The file is only created
// on the first write.
func InitLog(filePath string, levelString string) error {
	level, err := logging.LogLevel(levelString)
	if err != nil {
		return errors.Wrapf(err, "log level %s", levelString)
	}

	dir := path.Dir(filePath)
	if _, err := os.Stat(dir); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	ioWriter, err := rotatelogs.New(
		filePath+".%Y-%m-%d",
		rotatelogs.WithLinkName(filePath),
		rotatelogs.WithMaxAge(LOG_MAX_AGE),
		rotatelogs.WithRotationTime(LOG_ROTATION_INTERVAL),
	)
	if err != nil {
		return errors.Wrapf(err, "rotate log %s", filePath)
	}

	file := logging.NewBackendFormatter(
		logging.NewLogBackend(ioWriter, "", 0),
		logging.MustStringFormatter(LOG_FORMAT),
	)
	logging.SetBackend(consoleBackend(), file)
	logging.SetLevel(level, "")
	return nil
}

// SetLevel changes the level of all modules at runtime.
func SetLevel(levelString string) error {
	level, err := logging.LogLevel(levelString)
	if err != nil {
		return errors.Wrapf(err, "log level %s", levelString)
	}
	logging.SetLevel(level, "")
	log.Infof("log level set to %s", level)
	return nil
}

func GetLevel() string {
	return logging.GetLevel("").String()
}
