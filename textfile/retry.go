// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package textfile

import (
	"context"
	"fmt"

	"github.com/yourbase/textutil/retry"
	"zombiezen.com/go/log"
)

// ReadStringRetry is like ReadString, but retries read failures using the
// given backoff strategy until the read succeeds or the Context is Done.
// A missing file is reported immediately.
func ReadStringRetry(ctx context.Context, path string, strategy retry.BackoffStrategy) (string, error) {
	var content string
	attempts := 0
	err := retry.Do(ctx, fmt.Sprintf("reading %s", path), strategy, func() error {
		attempts++
		var err error
		content, err = ReadString(path)
		if IsKind(err, NotFound) {
			return retry.Permanent(err)
		}
		return err
	})
	if err != nil {
		return "", err
	}
	if attempts > 1 {
		log.Debugf(ctx, "Read %s after %d attempts", path, attempts)
	}
	return content, nil
}

// WriteRetry is like Write, but retries write failures using the given backoff
// strategy until the write succeeds or the Context is Done. A destination that
// cannot be created is reported immediately.
func WriteRetry(ctx context.Context, content, path string, strategy retry.BackoffStrategy) error {
	attempts := 0
	err := retry.Do(ctx, fmt.Sprintf("writing %s", path), strategy, func() error {
		attempts++
		err := Write(content, path)
		if IsKind(err, NotFound) {
			return retry.Permanent(err)
		}
		return err
	})
	if err != nil {
		return err
	}
	if attempts > 1 {
		log.Debugf(ctx, "Wrote %s after %d attempts", path, attempts)
	}
	return nil
}
