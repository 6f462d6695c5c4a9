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

package segmenttree

import (
	"sync/atomic"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("segmenttree")

var (
	EmptyInput   = errors.New("empty input")
	OutOfRange   = errors.New("position out of range")
	InvalidRange = errors.New("invalid range")
)

func validRange(l, r, n int) bool {
	return l >= 0 && r < n && l <= r
}

func validPosition(pos, n int) bool {
	return pos >= 0 && pos < n
}

// 被拒绝的操作不修改树，只记录日志并返回错误
func (s *stat) reject(err error) error {
	log.Warning(err)
	atomic.AddUint64(&s.count().Reject, 1)
	return err
}

func rangeError(op string, l, r, n int) error {
	return errors.Wrapf(InvalidRange, "%s [%d, %d] on size %d", op, l, r, n)
}

func positionError(op string, pos, n int) error {
	return errors.Wrapf(OutOfRange, "%s %d on size %d", op, pos, n)
}
