package future

// messages of the panics caused by misusing the package's API.
// such misuse is a programmer error, so it's never represented as a
// Failure value flowing through a pipeline.
const (
	nilCallbackPanicMsg = "future: the provided callback is nil"
	nilStarterPanicMsg  = "future: the provided starter is nil"
	nilSinkPanicMsg     = "future: the provided sink is nil"
	nilExecutorPanicMsg = "future: the provided executor is nil"
	nilFuturePanicMsg   = "future: the provided future is nil"
	nilCtxPanicMsg      = "future: the provided ctx is nil"
	noFuturesPanicMsg   = "future: no futures provided"

	consumedFuturePanicMsg = "future: the future has already been consumed"
	consumedChainPanicMsg  = "future: the chain has already been consumed"
	redeliverPanicMsg      = "future: the promise has already been delivered"
	zeroPromisePanicMsg    = "future: delivering through a zero promise"

	valueOnRejectedPanicMsg    = "future: taking the value of a rejected outcome"
	failureOnFulfilledPanicMsg = "future: taking the failure of a fulfilled outcome"
)
