// This file is part of Gruesome.
//
// Gruesome is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gruesome is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gruesome.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/environment"
	"github.com/skeptomai/gruesome-sub000/machine"
	"github.com/skeptomai/gruesome-sub000/machine/cpu"
	"github.com/skeptomai/gruesome-sub000/storyloader"
)

// sentinal errors returned by the performance package
const (
	PerformanceError = "performance: %v"
)

// sentinel used to end the Run() loop when the measurement period expires
const timedOut = "performance: timed out"

// how many instructions to execute between checks of the expiry timer.
// checking the timer channel is relatively expensive
const performanceBrake = 1024

// Check the performance of the interpreter using the supplied story file.
//
// The story runs with all peripherals disconnected for the specified
// duration and the instruction throughput is written to output. A CPU and
// memory profile is created when the profile argument is true.
//
// Stories settle into a read loop very quickly so there is no lead time
// before measurement starts. A story that reads input or quits before the
// duration expires ends the measurement early and the report covers the
// time that actually ran.
func Check(env *environment.Environment, output io.Writer, profile bool, ld *storyloader.Loader, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	m, err := machine.NewMachine(env, ld)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}
	defer m.End()

	m.AttachDisplay(&nullDisplay{})

	count := 0
	start := time.Now()

	runner := func() error {
		expired := make(chan bool, 1)
		time.AfterFunc(dur, func() {
			expired <- true
		})

		brake := 0
		start = time.Now()

		return m.Run(func() error {
			count++

			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-expired:
					return curated.Errorf(timedOut)
				default:
				}
			}

			return nil
		})
	}

	if profile {
		err = ProfileCPU("performance.cpu.profile", runner)
	} else {
		err = runner()
	}

	elapsed := time.Since(start).Seconds()

	if err != nil && !curated.Is(err, timedOut) {
		// input is not attached so a story that asks for a command has gone
		// as far as it can. that is a result, not a failure
		if !curated.Is(err, cpu.NotAttached) {
			return curated.Errorf(PerformanceError, err)
		}
	}

	ips := float64(count) / elapsed
	fmt.Fprintf(output, "%.0f instructions per second (%d instructions in %.2f seconds)\n", ips, count, elapsed)

	if profile {
		err = ProfileMem("performance.mem.profile")
		if err != nil {
			return err
		}
	}

	return nil
}
