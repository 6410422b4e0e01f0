package fault

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (k Kind) Code() codes.Code {
	switch k {
	case InvalidArgument:
		return codes.InvalidArgument
	case AlreadyExists:
		return codes.AlreadyExists
	case NotFound:
		return codes.NotFound
	case Unimplemented:
		return codes.Unimplemented
	default:
		return codes.Internal
	}
}

// Status converts err to a gRPC status error. Internal causes are not exposed.
func Status(err error) error {
	if err == nil {
		return nil
	}
	return status.Error(KindOf(err).Code(), MessageOf(err))
}
