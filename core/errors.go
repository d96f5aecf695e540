// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"errors"
	"fmt"
)

var (
	// ErrPartitionCount indicates a partition into zero or fewer groups.
	ErrPartitionCount = errors.New("partition count must be positive")

	// ErrCloneCount indicates a clone request for zero or fewer copies.
	ErrCloneCount = errors.New("clone count must be positive")

	// ErrNilChild indicates a composition with a nil child.
	ErrNilChild = errors.New("child cannot be nil")
)

// TypeContractError reports an attempt to compose a child whose kind
// is outside the container's allowed-child set.
type TypeContractError struct {
	Container Kind
	Child     Kind
}

func (e *TypeContractError) Error() string {
	return fmt.Sprintf("%s cannot contain a child of kind %s", e.Container, e.Child)
}

// RetentionAbortedError reports an insert rejected by a retention
// policy configured with NotifyAbort. The triggering insert is rolled
// back; the container is left exactly as it was before the insert.
type RetentionAbortedError struct {
	Victims int
}

func (e *RetentionAbortedError) Error() string {
	return fmt.Sprintf("retention policy would remove %d objects", e.Victims)
}
