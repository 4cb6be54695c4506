package common

var noopServiceLog chan ServiceLog

func init() {
	noopServiceLog = make(chan ServiceLog, 64)
	go startNoopServiceLog()
}

// GetNoopServiceLog returns a drained channel for components that
// require a service log but whose caller did not provide one
func GetNoopServiceLog() chan ServiceLog {
	return noopServiceLog
}

func startNoopServiceLog() {
	for {
		_, ok := <-noopServiceLog
		if !ok {
			break
		}
	}
}

func StopNoopServiceLog() {
	close(noopServiceLog)
}
