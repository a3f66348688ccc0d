package blog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/velimirb/portfolio-backend/pkg"
)

type PostsResponse struct {
	Posts []*Blog `json:"posts"`
	Total int     `json:"total"`
}

type newBlogRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	CoverImage string   `json:"coverImage"`
	Tags       []string `json:"tags"`
}

type blogRepo interface {
	AddBlog(ctx context.Context, blog *Blog) error
	UpdateBlog(ctx context.Context, blog *Blog) error
	DeleteBlog(ctx context.Context, id int) error
	All(ctx context.Context) ([]*Blog, error)
	BlogsCount(ctx context.Context) (int, error)
	GetBlogsPage(ctx context.Context, page, size int) ([]*Blog, error)
	GetBlog(ctx context.Context, id int) (*Blog, error)
}

type Handler struct {
	repo blogRepo
}

func NewHandler(repo blogRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/blogs", handler.handleAll).Methods("GET").Name("all-blogs")
	router.HandleFunc("/api/blogs/page/{page}/size/{size}", handler.handleGetPage).Methods("GET").Name("blogs-page")
	router.HandleFunc("/api/blogs/{id}", handler.handleGet).Methods("GET").Name("get-blog")
	router.HandleFunc("/api/blogs", handler.handleNewBlog).Methods("POST", "OPTIONS").Name("new-blog")
	router.HandleFunc("/api/blogs/{id}", handler.handleUpdateBlog).Methods("PUT", "OPTIONS").Name("update-blog")
	router.HandleFunc("/api/blogs/{id}", handler.handleDeleteBlog).Methods("DELETE", "OPTIONS").Name("delete-blog")
}

func (handler *Handler) handleNewBlog(w http.ResponseWriter, r *http.Request) {
	var newBlogReq newBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&newBlogReq); err != nil {
		log.Errorf("new blog, unmarshal json params: %s", err)
		http.Error(w, "add blog failed", http.StatusBadRequest)
		return
	}

	if newBlogReq.Title == "" {
		http.Error(w, "error, title empty", http.StatusBadRequest)
		return
	}
	if newBlogReq.Content == "" {
		http.Error(w, "error, content empty", http.StatusBadRequest)
		return
	}

	newBlog := &Blog{
		Title:      newBlogReq.Title,
		Content:    newBlogReq.Content,
		CoverImage: newBlogReq.CoverImage,
		Tags:       newBlogReq.Tags,
		CreatedAt:  time.Now(),
	}

	if err := handler.repo.AddBlog(r.Context(), newBlog); err != nil {
		log.Errorf("add new blog failed: %s", err)
		http.Error(w, "add new blog failed", http.StatusInternalServerError)
		return
	}

	log.Tracef("new blog %d: [%s] added", newBlog.ID, newBlog.Title)

	pkg.WriteResponse(
		w,
		pkg.ContentType.Text,
		fmt.Sprintf("added:%d", newBlog.ID),
		http.StatusCreated,
	)
}

func (handler *Handler) handleUpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var updateBlogReq newBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&updateBlogReq); err != nil {
		log.Errorf("update blog, unmarshal json params: %s", err)
		http.Error(w, "update blog failed", http.StatusBadRequest)
		return
	}

	if updateBlogReq.Title == "" {
		http.Error(w, "error, title empty", http.StatusBadRequest)
		return
	}
	if updateBlogReq.Content == "" {
		http.Error(w, "error, content empty", http.StatusBadRequest)
		return
	}

	blog := &Blog{
		ID:         id,
		Title:      updateBlogReq.Title,
		Content:    updateBlogReq.Content,
		CoverImage: updateBlogReq.CoverImage,
		Tags:       updateBlogReq.Tags,
	}

	if err := handler.repo.UpdateBlog(r.Context(), blog); err != nil {
		if errors.Is(err, ErrBlogNotFound) {
			http.Error(w, "blog not found", http.StatusNotFound)
			return
		}
		log.Errorf("update blog failed: %s", err)
		http.Error(w, "update blog failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("updated:%d", id))
}

func (handler *Handler) handleDeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteBlog(r.Context(), id); err != nil {
		if errors.Is(err, ErrBlogNotFound) {
			http.Error(w, "blog not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete blog %d: %s", id, err)
		http.Error(w, "error, blog not deleted, internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	blog, err := handler.repo.GetBlog(r.Context(), id)
	if errors.Is(err, ErrBlogNotFound) {
		http.Error(w, "blog not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get blog %d: %s", id, err)
		http.Error(w, "get blog error", http.StatusInternalServerError)
		return
	}

	blogJson, err := json.Marshal(blog)
	if err != nil {
		log.Errorf("marshal blog error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, blogJson)
}

func (handler *Handler) handleAll(w http.ResponseWriter, r *http.Request) {
	allBlogs, err := handler.repo.All(r.Context())
	if err != nil {
		log.Errorf("get all blogs error: %s", err)
		http.Error(w, "get all blogs error", http.StatusInternalServerError)
		return
	}

	if allBlogs == nil {
		allBlogs = []*Blog{}
	}

	allBlogsJson, err := json.Marshal(allBlogs)
	if err != nil {
		log.Errorf("marshal all blogs error: %s", err)
		http.Error(w, "marshal all blogs error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, allBlogsJson)
}

func (handler *Handler) handleGetPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	pageStr := vars["page"]
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		log.Errorf("handle get blogs page, from <page> param: %s", err)
		http.Error(w, "parse error, parameter <page>", http.StatusBadRequest)
		return
	}
	sizeStr := vars["size"]
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		log.Errorf("handle get blogs page, from <size> param: %s", err)
		http.Error(w, "parse error, parameter <size>", http.StatusBadRequest)
		return
	}

	log.Tracef("get blogs - page %s size %s", pageStr, sizeStr)

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	blogPosts, err := handler.repo.GetBlogsPage(r.Context(), page, size)
	if err != nil {
		log.Errorf("get blogs error: %s", err)
		http.Error(w, "failed to get blog posts", http.StatusInternalServerError)
		return
	}

	totalBlogsCount, err := handler.repo.BlogsCount(r.Context())
	if err != nil {
		log.Errorf("get blogs error: %s", err)
		http.Error(w, "failed to get blog posts", http.StatusInternalServerError)
		return
	}

	if blogPosts == nil {
		blogPosts = []*Blog{}
	}

	postsResp := PostsResponse{
		Posts: blogPosts,
		Total: totalBlogsCount,
	}

	blogPostsRespJson, err := json.Marshal(postsResp)
	if err != nil {
		log.Errorf("marshal blogs error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, blogPostsRespJson, http.StatusOK)
}
