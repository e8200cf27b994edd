package api

import (
	"context"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/protobuf/encoding/protojson"

	pb "tweetchain/api/tweet/v1"
)

// GatewayMarshaler имена полей как в .proto, нулевые значения не пропускаются
func GatewayMarshaler() runtime.ServeMuxOption {
	return runtime.WithMarshalerOption(runtime.MIMEWildcard, &runtime.JSONPb{
		MarshalOptions: protojson.MarshalOptions{
			UseProtoNames:   true,
			EmitUnpopulated: true,
		},
		UnmarshalOptions: protojson.UnmarshalOptions{
			DiscardUnknown: true,
		},
	})
}

// NewGateway HTTP/JSON поверх gRPC клиента. Authorization заголовки
// уходят в метаданные "authorization" через runtime.AnnotateContext.
func NewGateway(ctx context.Context, client pb.TweetServiceClient, opts ...runtime.ServeMuxOption) (*runtime.ServeMux, error) {
	mux := runtime.NewServeMux(append([]runtime.ServeMuxOption{GatewayMarshaler()}, opts...)...)
	if err := pb.RegisterTweetServiceHandlerClient(ctx, mux, client); err != nil {
		return nil, err
	}
	return mux, nil
}
