package botserver

import (
	"context"
	"net/http"

	"github.com/qrmaster/qr-master-bot/internal/logger"
)

type middlewareFunc func(next http.Handler) http.Handler

// BotServer оборачивает http.Server: цепочка middleware,
// запуск и корректная остановка
type BotServer struct {
	log         logger.Logger
	middlewares []middlewareFunc
	mux         http.Handler
	address     string
	server      *http.Server
}

func NewBotServer(address string, mux http.Handler, log logger.Logger) *BotServer {
	return &BotServer{
		address: address,
		mux:     mux,
		log:     log,
	}
}

func (bs *BotServer) AddMiddleware(funcs ...middlewareFunc) {
	bs.middlewares = append(bs.middlewares, funcs...)
}

func (bs *BotServer) RunServer() {
	handler := bs.mux

	for _, f := range bs.middlewares {
		handler = f(handler)
	}

	bs.server = &http.Server{
		Addr:    bs.address,
		Handler: handler,
	}
	bs.log.Infof("Starting server on %s", bs.address)
	if err := bs.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		bs.log.Errorf("starting server on %s error: %s", bs.address, err)
	}
}

func (bs *BotServer) Shutdown(ctx context.Context) error {
	return bs.server.Shutdown(ctx)
}
