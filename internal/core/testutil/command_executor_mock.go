package testutil

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	ExecuteFunc func(shellName, pipeline string) (string, string, error)
}

func (m *MockCommandExecutor) Execute(shellName, pipeline string) (string, string, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(shellName, pipeline)
	}
	return "", "", nil
}
