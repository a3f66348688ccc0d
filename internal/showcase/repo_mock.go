package showcase

import (
	"context"
	"sort"
	"sync"
)

var _ showcaseRepo = (*repoMock)(nil)

type repoMock struct {
	mutex        sync.Mutex
	clients      map[int]*Client
	testimonials map[int]*Testimonial
	affiliates   map[int]*Affiliate
	nextID       int
}

func newRepoMock() *repoMock {
	return &repoMock{
		clients:      map[int]*Client{},
		testimonials: map[int]*Testimonial{},
		affiliates:   map[int]*Affiliate{},
		nextID:       1,
	}
}

func (r *repoMock) AddClient(_ context.Context, client *Client) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if client.Name == "" {
		return ErrRequiredFieldEmpty
	}
	client.ID = r.nextID
	r.nextID++
	r.clients[client.ID] = client
	return nil
}

func (r *repoMock) UpdateClient(_ context.Context, client *Client) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if client.Name == "" {
		return ErrRequiredFieldEmpty
	}
	if _, ok := r.clients[client.ID]; !ok {
		return ErrClientNotFound
	}
	r.clients[client.ID] = client
	return nil
}

func (r *repoMock) DeleteClient(_ context.Context, id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.clients[id]; !ok {
		return ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

func (r *repoMock) Clients(_ context.Context) ([]*Client, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	var clients []*Client
	for _, c := range r.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })
	return clients, nil
}

func (r *repoMock) AddTestimonial(_ context.Context, testimonial *Testimonial) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if testimonial.Author == "" || testimonial.Quote == "" {
		return ErrRequiredFieldEmpty
	}
	testimonial.ID = r.nextID
	r.nextID++
	r.testimonials[testimonial.ID] = testimonial
	return nil
}

func (r *repoMock) UpdateTestimonial(_ context.Context, testimonial *Testimonial) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if testimonial.Author == "" || testimonial.Quote == "" {
		return ErrRequiredFieldEmpty
	}
	if _, ok := r.testimonials[testimonial.ID]; !ok {
		return ErrTestimonialNotFound
	}
	r.testimonials[testimonial.ID] = testimonial
	return nil
}

func (r *repoMock) DeleteTestimonial(_ context.Context, id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.testimonials[id]; !ok {
		return ErrTestimonialNotFound
	}
	delete(r.testimonials, id)
	return nil
}

func (r *repoMock) Testimonials(_ context.Context) ([]*Testimonial, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	var testimonials []*Testimonial
	for _, tm := range r.testimonials {
		testimonials = append(testimonials, tm)
	}
	sort.Slice(testimonials, func(i, j int) bool { return testimonials[i].ID < testimonials[j].ID })
	return testimonials, nil
}

func (r *repoMock) AddAffiliate(_ context.Context, affiliate *Affiliate) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if affiliate.Name == "" || affiliate.URL == "" {
		return ErrRequiredFieldEmpty
	}
	affiliate.ID = r.nextID
	r.nextID++
	r.affiliates[affiliate.ID] = affiliate
	return nil
}

func (r *repoMock) UpdateAffiliate(_ context.Context, affiliate *Affiliate) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if affiliate.Name == "" || affiliate.URL == "" {
		return ErrRequiredFieldEmpty
	}
	if _, ok := r.affiliates[affiliate.ID]; !ok {
		return ErrAffiliateNotFound
	}
	r.affiliates[affiliate.ID] = affiliate
	return nil
}

func (r *repoMock) DeleteAffiliate(_ context.Context, id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.affiliates[id]; !ok {
		return ErrAffiliateNotFound
	}
	delete(r.affiliates, id)
	return nil
}

func (r *repoMock) Affiliates(_ context.Context) ([]*Affiliate, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	var affiliates []*Affiliate
	for _, a := range r.affiliates {
		affiliates = append(affiliates, a)
	}
	sort.Slice(affiliates, func(i, j int) bool { return affiliates[i].ID < affiliates[j].ID })
	return affiliates, nil
}
