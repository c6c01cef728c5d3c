package gzipcomp

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"strconv"
)

// ResponseBuffer накапливает тело ответа и откладывает запись заголовков,
// чтобы middleware могло решить, сжимать ли ответ целиком
type ResponseBuffer struct {
	w      http.ResponseWriter
	buffer bytes.Buffer
	status int
}

func NewResponseBuffer(w http.ResponseWriter) *ResponseBuffer {
	return &ResponseBuffer{
		w:      w,
		status: http.StatusOK,
	}
}

func (rb *ResponseBuffer) Header() http.Header {
	return rb.w.Header()
}

func (rb *ResponseBuffer) Write(data []byte) (int, error) {
	return rb.buffer.Write(data)
}

func (rb *ResponseBuffer) WriteHeader(statusCode int) {
	rb.status = statusCode
}

func (rb *ResponseBuffer) Status() int {
	return rb.status
}

func (rb *ResponseBuffer) Len() int {
	return rb.buffer.Len()
}

// ContentType возвращает тип содержимого, выставленный обработчиком
func (rb *ResponseBuffer) ContentType() string {
	return rb.w.Header().Get("Content-Type")
}

// FlushTo записывает накопленный ответ, при необходимости сжимая его
func (rb *ResponseBuffer) FlushTo(compress bool) error {
	if compress {
		rb.w.Header().Set("Content-Encoding", "gzip")
		rb.w.Header().Del("Content-Length")
		rb.w.WriteHeader(rb.status)

		zw := gzip.NewWriter(rb.w)
		if _, err := zw.Write(rb.buffer.Bytes()); err != nil {
			return err
		}
		return zw.Close()
	}

	rb.w.Header().Set("Content-Length", strconv.Itoa(rb.buffer.Len()))
	rb.w.WriteHeader(rb.status)
	_, err := rb.w.Write(rb.buffer.Bytes())
	return err
}

// CompressReader is ReadCloser with gzip decompression
type CompressReader struct {
	body io.ReadCloser
	zr   *gzip.Reader
}

func NewCompressReader(r io.ReadCloser) (*CompressReader, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return &CompressReader{
		body: r,
		zr:   zr,
	}, nil
}

func (cr *CompressReader) Read(b []byte) (int, error) {
	return cr.zr.Read(b)
}

func (cr *CompressReader) Close() error {
	if err := cr.zr.Close(); err != nil {
		return err
	}
	return cr.body.Close()
}
