/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

// Process exit codes. A flat block of sentinels, one per failure mode
// the CLI itself can hit, rather than a wrapped error hierarchy: the
// only consumer of these values is the shell that invoked ltuprobe.
const (
	ErrMissingParam = 1
	ErrInvalidParam = 2
	ErrOpenFile     = 3
	ErrReadFile     = 4
	ErrInvalidFile  = 5
	ErrUnknown      = 127
)
