package history

import "github.com/stretchr/testify/mock"

// MockAppender is a mock implementation of Appender using testify/mock.
type MockAppender struct {
	mock.Mock
}

func (m *MockAppender) Append(line string) error {
	args := m.Called(line)
	return args.Error(0)
}
