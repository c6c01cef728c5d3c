package logger

type Logger interface {
	Info(mes string)
	Infof(str string, arg ...any)
	Error(mess string)
	Errorf(str string, arg ...any)
	Debug(mess string)
	Debugf(str string, arg ...any)
}
