package service

import "errors"

// 业务错误都是确定性的规则结果，不重试；
// AlreadyFollowing / AlreadyRequested 属于提示性冲突，不算服务故障。
var (
    ErrFollowSelf       = errors.New("cannot follow self")
    ErrAlreadyFollowing = errors.New("already following the requested user")
    ErrAlreadyRequested = errors.New("follow request already pending for the requested user")
    ErrNotFound         = errors.New("resource not found")
    ErrForbidden        = errors.New("operation not permitted")
    ErrNotAuthenticated = errors.New("not authenticated")
    ErrNotSunday        = errors.New("it is not sunday anywhere on earth")
)
