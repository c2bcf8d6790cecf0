//go:build unit || !integration

package report

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/usagereport-project/usagereport/pkg/logger"
)

type ReporterTestSuite struct {
	suite.Suite
	reporter *Reporter
}

func TestReporterTestSuite(t *testing.T) {
	suite.Run(t, new(ReporterTestSuite))
}

func (s *ReporterTestSuite) SetupTest() {
	logger.ConfigureTestLogging(s.T())
	s.reporter = NewReporter()
}

func (s *ReporterTestSuite) TestAddAndSnapshot() {
	s.reporter.AddUsage(usageAt(0, 10, 2, 100))
	s.reporter.AddUsage(usageAt(5, 15, 3, 200))

	snapshot := s.reporter.Snapshot()
	s.Equal(2, snapshot.TotalTasks())
	s.Equal(5.0, snapshot.MaxParallelCPU())

	// later adds must not show up in an existing snapshot
	s.reporter.AddUsage(usageAt(7, 9, 1, 1))
	s.Equal(2, snapshot.TotalTasks())
	s.Equal(3, s.reporter.Snapshot().TotalTasks())
}

func (s *ReporterTestSuite) TestClear() {
	s.reporter.AddUsage(usageAt(0, 10, 1, 1))
	s.reporter.Clear()

	snapshot := s.reporter.Snapshot()
	s.Equal(0, snapshot.TotalTasks())
	s.True(snapshot.StartTime.IsZero())
	s.True(snapshot.FinishTime.IsZero())
}

func (s *ReporterTestSuite) TestConcurrentAddsLoseNoUpdates() {
	const producers = 100

	var wg sync.WaitGroup
	wg.Add(producers)
	for i := 0; i < producers; i++ {
		go func(offset int) {
			defer wg.Done()
			s.reporter.AddUsage(usageAt(offset, offset+10, 1, 1))
		}(i)
	}
	wg.Wait()

	s.Equal(producers, s.reporter.Snapshot().TotalTasks())
	s.Len(s.reporter.Summary().Children, producers)
}
