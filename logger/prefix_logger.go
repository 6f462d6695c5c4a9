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
	"fmt"

	"github.com/op/go-logging"
)

// PrefixLogger puts a fixed prefix before every message, e.g. the command or tree
// being worked on.
type PrefixLogger struct {
	prefix string
	log    *logging.Logger
}

// 注意 logger 需要自行将 ExtraCalldepth 加 1，以便拿到 log 文件名，行号等信息
func WrapWithPrefixLogger(prefix string, logger *logging.Logger) *PrefixLogger {
	return &PrefixLogger{prefix, logger}
}

func GetPrefixLogger(module, prefix string) (*PrefixLogger, error) {
	logger, err := logging.GetLogger(module)
	if err != nil {
		return nil, err
	}
	logger.ExtraCalldepth += 2
	return &PrefixLogger{prefix, logger}, nil
}

func (l *PrefixLogger) Prefix() string {
	return l.prefix
}

func (l *PrefixLogger) output(level logging.Level, message string) {
	if !l.log.IsEnabledFor(level) {
		return
	}
	message = l.prefix + " " + message
	switch level {
	case logging.CRITICAL, logging.ERROR:
		l.log.Error(message)
	case logging.WARNING:
		l.log.Warning(message)
	case logging.NOTICE, logging.INFO:
		l.log.Info(message)
	default:
		l.log.Debug(message)
	}
}

func (l *PrefixLogger) Error(args ...interface{}) {
	l.output(logging.ERROR, fmt.Sprint(args...))
}

func (l *PrefixLogger) Errorf(format string, args ...interface{}) {
	l.output(logging.ERROR, fmt.Sprintf(format, args...))
}

func (l *PrefixLogger) Warning(args ...interface{}) {
	l.output(logging.WARNING, fmt.Sprint(args...))
}

func (l *PrefixLogger) Warningf(format string, args ...interface{}) {
	l.output(logging.WARNING, fmt.Sprintf(format, args...))
}

func (l *PrefixLogger) Info(args ...interface{}) {
	l.output(logging.INFO, fmt.Sprint(args...))
}

func (l *PrefixLogger) Infof(format string, args ...interface{}) {
	l.output(logging.INFO, fmt.Sprintf(format, args...))
}

func (l *PrefixLogger) Debug(args ...interface{}) {
	l.output(logging.DEBUG, fmt.Sprint(args...))
}

func (l *PrefixLogger) Debugf(format string, args ...interface{}) {
	l.output(logging.DEBUG, fmt.Sprintf(format, args...))
}
