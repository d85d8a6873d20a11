package database

const _defaultLimit = 100

type FindOptions struct {
	Limit  uint64
	Offset uint64
}

func (opts FindOptions) limit() uint64 {
	if opts.Limit == 0 {
		return _defaultLimit
	}
	return opts.Limit
}
