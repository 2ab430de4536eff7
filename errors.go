// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wordlist

import (
	"errors"
	"fmt"
)

// ErrWordlist is a parent error for all wordlist errors.
var ErrWordlist = errors.New("wordlist")

// ErrOpen indicates that a dictionary source could not be opened.
var ErrOpen = fmt.Errorf("%w: opening source", ErrWordlist)

// ErrRead indicates that reading a dictionary source failed.
var ErrRead = fmt.Errorf("%w: reading source", ErrWordlist)

// ErrWrite indicates that writing rendered entries failed.
var ErrWrite = fmt.Errorf("%w: writing output", ErrWordlist)
