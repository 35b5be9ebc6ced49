// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/DeepakDkd/rag-agent/internal/answer"
)

// AnswerMsg delivers the settled outcome of an answer request. Exactly one
// arrives per submit, for both success and failure.
type AnswerMsg struct {
	Result *answer.Result
	Err    error
}

// CopyResultMsg confirms a clipboard write.
type CopyResultMsg struct {
	Err error
}

// CopyAckExpiredMsg fires when the transient "copied" acknowledgment should
// revert.
type CopyAckExpiredMsg struct{}
