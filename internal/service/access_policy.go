package service

import (
    "context"
    "fmt"

    "github.com/d60-Lab/sundaynet/internal/model"
    "github.com/d60-Lab/sundaynet/internal/repository"
)

// Resource 受控资源类别
type Resource int

const (
    ResourcePost Resource = iota
    ResourceProfile
    ResourceFollow
    ResourceFollowRequest
)

// Action 对资源的意图
type Action int

const (
    ActionRead Action = iota
    ActionCreate
    ActionUpdate
    ActionDelete
    ActionAccept
    ActionList
)

// rule 是 {资源, 动作} 的显式标签对，决策表按它索引，
// 不靠运行期字符串匹配，缺规则一律拒绝。
type rule struct {
    Resource Resource
    Action   Action
}

// Decision 单条判定：nil 放行，否则 ErrForbidden / ErrNotSunday 等
type Decision func(ctx context.Context, actor *model.Profile, target any) error

// AccessPolicy 按 (actor, target, action) 给出允许/拒绝。
// 只消费关系状态与所有权，不做任何写入。
// Follow 表有行即可见——待处理请求独立成表，
// 这里永远不需要过滤"pending"行，这是结构性保证。
type AccessPolicy struct {
    follows repository.FollowRepository
    gate    *SundayGate
    rules   map[rule]Decision
}

func NewAccessPolicy(follows repository.FollowRepository, gate *SundayGate) *AccessPolicy {
    p := &AccessPolicy{follows: follows, gate: gate}
    p.rules = map[rule]Decision{
        {ResourcePost, ActionRead}:   p.postRead,
        {ResourcePost, ActionCreate}: p.postCreate,
        {ResourcePost, ActionDelete}: p.postDelete,

        {ResourceProfile, ActionRead}:   p.profileRead,
        {ResourceProfile, ActionUpdate}: p.profileOwn,
        {ResourceProfile, ActionDelete}: p.profileOwn,

        {ResourceFollow, ActionRead}:   p.followParty,
        {ResourceFollow, ActionDelete}: p.followParty,

        {ResourceFollowRequest, ActionList}:   p.requestInboxOwner,
        {ResourceFollowRequest, ActionRead}:   p.requestParty,
        {ResourceFollowRequest, ActionDelete}: p.requestParty,
        {ResourceFollowRequest, ActionAccept}: p.requestFollowee,
        {ResourceFollowRequest, ActionCreate}: p.requestAsSelf,
    }
    return p
}

// Authorize 未认证一律拒绝；未登记的 {资源,动作} 组合同样拒绝。
func (p *AccessPolicy) Authorize(ctx context.Context, actor *model.Profile, res Resource, act Action, target any) error {
    if actor == nil {
        return ErrNotAuthenticated
    }
    decide, ok := p.rules[rule{res, act}]
    if !ok {
        return ErrForbidden
    }
    return decide(ctx, actor, target)
}

// 本人可读自己的帖子，作者的关注者可读，其余拒绝
func (p *AccessPolicy) postRead(ctx context.Context, actor *model.Profile, target any) error {
    post, err := asPost(target)
    if err != nil {
        return err
    }
    if post.AuthorID == actor.ID {
        return nil
    }
    follows, err := p.follows.Exists(ctx, actor.ID, post.AuthorID)
    if err != nil {
        return err
    }
    if !follows {
        return ErrForbidden
    }
    return nil
}

// 发帖只看时间窗；作者由服务端强制为当前用户，不信任客户端
func (p *AccessPolicy) postCreate(ctx context.Context, actor *model.Profile, target any) error {
    if !p.gate.IsOpen() {
        return ErrNotSunday
    }
    return nil
}

func (p *AccessPolicy) postDelete(ctx context.Context, actor *model.Profile, target any) error {
    post, err := asPost(target)
    if err != nil {
        return err
    }
    if post.AuthorID != actor.ID {
        return ErrForbidden
    }
    return nil
}

func (p *AccessPolicy) profileRead(ctx context.Context, actor *model.Profile, target any) error {
    profile, err := asProfile(target)
    if err != nil {
        return err
    }
    if profile.ID == actor.ID {
        return nil
    }
    follows, err := p.follows.Exists(ctx, actor.ID, profile.ID)
    if err != nil {
        return err
    }
    if !follows {
        return ErrForbidden
    }
    return nil
}

func (p *AccessPolicy) profileOwn(ctx context.Context, actor *model.Profile, target any) error {
    profile, err := asProfile(target)
    if err != nil {
        return err
    }
    if profile.ID != actor.ID {
        return ErrForbidden
    }
    return nil
}

// 关注边只对边上两端可见/可删
func (p *AccessPolicy) followParty(ctx context.Context, actor *model.Profile, target any) error {
    f, ok := target.(*model.Follow)
    if !ok {
        return fmt.Errorf("access policy: expected *model.Follow, got %T", target)
    }
    if f.FollowerID != actor.ID && f.FolloweeID != actor.ID {
        return ErrForbidden
    }
    return nil
}

// 请求收件箱只有收件人本人可列
func (p *AccessPolicy) requestInboxOwner(ctx context.Context, actor *model.Profile, target any) error {
    profile, err := asProfile(target)
    if err != nil {
        return err
    }
    if profile.ID != actor.ID {
        return ErrForbidden
    }
    return nil
}

func (p *AccessPolicy) requestParty(ctx context.Context, actor *model.Profile, target any) error {
    req, err := asRequest(target)
    if err != nil {
        return err
    }
    if req.FollowerID != actor.ID && req.FolloweeID != actor.ID {
        return ErrForbidden
    }
    return nil
}

func (p *AccessPolicy) requestFollowee(ctx context.Context, actor *model.Profile, target any) error {
    req, err := asRequest(target)
    if err != nil {
        return err
    }
    if req.FolloweeID != actor.ID {
        return ErrForbidden
    }
    return nil
}

// 防冒充：只允许以自己为 follower 发起请求
func (p *AccessPolicy) requestAsSelf(ctx context.Context, actor *model.Profile, target any) error {
    req, err := asRequest(target)
    if err != nil {
        return err
    }
    if req.FollowerID != actor.ID {
        return ErrForbidden
    }
    return nil
}

func asPost(target any) (*model.Post, error) {
    post, ok := target.(*model.Post)
    if !ok {
        return nil, fmt.Errorf("access policy: expected *model.Post, got %T", target)
    }
    return post, nil
}

func asProfile(target any) (*model.Profile, error) {
    profile, ok := target.(*model.Profile)
    if !ok {
        return nil, fmt.Errorf("access policy: expected *model.Profile, got %T", target)
    }
    return profile, nil
}

func asRequest(target any) (*model.FollowRequest, error) {
    req, ok := target.(*model.FollowRequest)
    if !ok {
        return nil, fmt.Errorf("access policy: expected *model.FollowRequest, got %T", target)
    }
    return req, nil
}
