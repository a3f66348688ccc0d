package blog

import (
	"context"
	"sort"
	"sync"
	"time"
)

var _ blogRepo = (*repoMock)(nil)

type repoMock struct {
	mutex  sync.Mutex
	blogs  map[int]*Blog
	nextID int
}

func newRepoMock() *repoMock {
	return &repoMock{
		blogs:  map[int]*Blog{},
		nextID: 1,
	}
}

func (r *repoMock) AddBlog(_ context.Context, blog *Blog) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if blog.Content == "" || blog.Title == "" {
		return ErrBlogTitleOrContentEmpty
	}
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = time.Now()
	}

	blog.ID = r.nextID
	r.nextID++
	r.blogs[blog.ID] = blog
	return nil
}

func (r *repoMock) UpdateBlog(_ context.Context, blog *Blog) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if blog.Content == "" || blog.Title == "" {
		return ErrBlogTitleOrContentEmpty
	}

	stored, ok := r.blogs[blog.ID]
	if !ok {
		return ErrBlogNotFound
	}

	stored.Title = blog.Title
	stored.Content = blog.Content
	stored.CoverImage = blog.CoverImage
	stored.Tags = blog.Tags
	return nil
}

func (r *repoMock) DeleteBlog(_ context.Context, id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.blogs[id]; !ok {
		return ErrBlogNotFound
	}

	delete(r.blogs, id)
	return nil
}

func (r *repoMock) All(_ context.Context) ([]*Blog, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.allSorted(), nil
}

func (r *repoMock) BlogsCount(_ context.Context) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.blogs), nil
}

func (r *repoMock) GetBlogsPage(_ context.Context, page, size int) ([]*Blog, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	all := r.allSorted()
	offset := (page - 1) * size
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + size
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *repoMock) GetBlog(_ context.Context, id int) (*Blog, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	blog, ok := r.blogs[id]
	if !ok {
		return nil, ErrBlogNotFound
	}
	return blog, nil
}

func (r *repoMock) allSorted() []*Blog {
	var blogs []*Blog
	for _, blog := range r.blogs {
		blogs = append(blogs, blog)
	}
	sort.Slice(blogs, func(i, j int) bool {
		return blogs[i].ID > blogs[j].ID
	})
	return blogs
}
