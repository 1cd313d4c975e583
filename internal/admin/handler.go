package admin

import (
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/order"
	"github.com/wichananm65/fashion-storefront/internal/session"
	"github.com/wichananm65/fashion-storefront/internal/web"
)

type Handler struct {
	service *Service
	resp    *web.Responder
}

func NewHandler(s *Service, resp *web.Responder) *Handler {
	return &Handler{service: s, resp: resp}
}

// RegisterRoutes mounts the back-office on r, which is expected to be the
// /bff/admin group behind auth.AdminGuard.
func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/dashboard", h.getDashboard)

	r.Get("/products", h.getProducts)
	r.Post("/products", h.createProduct)
	r.Post("/products/bulk", h.bulkProducts)
	r.Get("/products/:id", h.getProduct)
	r.Put("/products/:id", h.updateProduct)
	r.Delete("/products/:id", h.deleteProduct)

	r.Get("/categories", h.getCategories)
	r.Post("/categories", h.saveCategory)
	r.Put("/categories/:id", h.saveCategory)
	r.Delete("/categories/:id", h.deleteCategory)

	r.Get("/subcategories", h.getSubcategories)
	r.Post("/subcategories", h.saveSubcategory)
	r.Put("/subcategories/:id", h.saveSubcategory)
	r.Delete("/subcategories/:id", h.deleteSubcategory)

	r.Get("/brands", h.getBrands)
	r.Post("/brands", h.saveBrand)
	r.Put("/brands/:id", h.saveBrand)
	r.Delete("/brands/:id", h.deleteBrand)

	r.Get("/orders", h.getOrders)
	r.Get("/orders/:id", h.getOrder)
	r.Put("/orders/:id/status", h.updateOrderStatus)
	r.Put("/orders/:id/pay", h.markPaid)
	r.Put("/orders/:id/deliver", h.markDelivered)
	r.Delete("/orders/:id", h.deleteOrder)

	r.Get("/users", h.getUsers)
	r.Get("/users/:id", h.getUser)
	r.Put("/users/:id", h.updateUser)
	r.Put("/users/:id/role", h.changeRole)
	r.Delete("/users/:id", h.deleteUser)

	r.Get("/reviews", h.getReviews)
	r.Put("/reviews/:id/approve", h.approveReview)
	r.Delete("/reviews/:id", h.deleteReview)
}

func queryFrom(c *fiber.Ctx) Query {
	return Query{
		Page:   c.QueryInt("page", 0),
		Limit:  c.QueryInt("limit", 0),
		Sort:   c.Query("sort"),
		Search: c.Query("search"),
	}
}

func badBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
}

func (h *Handler) getDashboard(c *fiber.Ctx) error {
	d := h.service.Dashboard(c.UserContext())
	lang := session.Lang(c)
	recent := make([]order.View, 0, len(d.RecentOrders))
	for _, o := range d.RecentOrders {
		recent = append(recent, order.NewView(o, lang))
	}
	return web.Page(c, fiber.Map{
		"stats":        d.Stats,
		"recentOrders": recent,
		"topProducts":  d.TopProducts,
	})
}

// products

func (h *Handler) getProducts(c *fiber.Ctx) error {
	res, err := h.service.Products(c.UserContext(), queryFrom(c))
	if err != nil {
		return h.resp.Fail(c, err, "productsLoadFailed")
	}
	return c.JSON(fiber.Map{"data": res.Data, "results": len(res.Data), "pagination": res.PaginationResult})
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.Product(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.resp.Fail(c, err, "productLoadFailed")
	}
	return c.JSON(fiber.Map{"data": p})
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	form, err := readProductForm(c)
	if err != nil {
		return h.resp.Fail(c, err, "requiredFields")
	}
	p, err := h.service.CreateProduct(c.UserContext(), form)
	if err != nil {
		return h.resp.Fail(c, err, "error")
	}
	return h.resp.OK(c, fiber.StatusCreated, fiber.Map{"data": p, "redirect": "/admin/products"}, "productCreated")
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	form, err := readProductForm(c)
	if err != nil {
		return h.resp.Fail(c, err, "requiredFields")
	}
	p, err := h.service.UpdateProduct(c.UserContext(), c.Params("id"), form)
	if err != nil {
		return h.resp.Fail(c, err, "error")
	}
	return h.resp.OK(c, fiber.StatusOK, fiber.Map{"data": p, "redirect": "/admin/products"}, "productUpdated")
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return h.resp.Fail(c, err, "error")
	}
	return h.resp.OK(c, fiber.StatusOK, nil, "productDeleted")
}

func (h *Handler) bulkProducts(c *fiber.Ctx) error {
	payload := new(BulkRequest)
	if err := c.BodyParser(payload); err != nil {
		return badBody(c, err)
	}
	res, err := h.service.Bulk(c.UserContext(), *payload)
	if err != nil {
		return h.resp.Fail(c, err, "bulkInvalid")
	}
	lang := session.Lang(c)
	for i := range res.Failed {
		res.Failed[i].Message = web.Message(lang, res.Failed[i].Err, "error")
	}
	if len(res.Succeeded) == 0 {
		return h.resp.Fail(c, res.Failed[0].Err, "error")
	}
	return h.resp.OK(c, fiber.StatusOK, fiber.Map{"data": res}, "bulkDone")
}

// readProductForm accepts multipart (with images) or urlencoded bodies.
func readProductForm(c *fiber.Ctx) (ProductForm, error) {
	values, files, err := formParts(c)
	if err != nil {
		return ProductForm{}, err
	}
	first := func(key string) string {
		if v := values[key]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return ""
	}

	f := ProductForm{
		Title:       first("title"),
		Description: first("description"),
		Category:    first("category"),
		Subcategory: first("subcategory"),
		Brand:       first("brand"),
		Colors:      nonEmpty(values["colors[]"], values["colors"]),
		Sizes:       nonEmpty(values["sizes[]"], values["sizes"]),
	}
	if f.Subcategory == "" {
		f.Subcategory = first("subcategories")
	}

	if f.Price, err = strconv.ParseFloat(first("price"), 64); err != nil {
		return f, ErrMissingFields
	}
	if f.Quantity, err = strconv.Atoi(first("quantity")); err != nil {
		return f, ErrMissingFields
	}
	if d := first("discount"); d != "" {
		if f.Discount, err = strconv.ParseFloat(d, 64); err != nil {
			return f, ErrMissingFields
		}
	}

	if fhs := files["imageCover"]; len(fhs) > 0 {
		cover, err := readFile(fhs[0])
		if err != nil {
			return f, err
		}
		f.Cover = &cover
	}
	for _, fh := range files["images"] {
		img, err := readFile(fh)
		if err != nil {
			return f, err
		}
		f.Images = append(f.Images, img)
	}
	return f, nil
}

func formParts(c *fiber.Ctx) (map[string][]string, map[string][]*multipart.FileHeader, error) {
	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, nil, err
		}
		return form.Value, form.File, nil
	}
	values := map[string][]string{}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		values[string(k)] = append(values[string(k)], string(v))
	})
	return values, nil, nil
}

func readFile(fh *multipart.FileHeader) (apiclient.File, error) {
	f, err := fh.Open()
	if err != nil {
		return apiclient.File{}, err
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return apiclient.File{}, err
	}
	return apiclient.File{Name: fh.Filename, ContentType: fh.Header.Get("Content-Type"), Content: content}, nil
}

func nonEmpty(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		for _, v := range l {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// catalog

func readImageForm(c *fiber.Ctx) (ImageForm, error) {
	values, files, err := formParts(c)
	if err != nil {
		return ImageForm{}, err
	}
	f := ImageForm{}
	if v := values["name"]; len(v) > 0 {
		f.Name = v[0]
	}
	if fhs := files["image"]; len(fhs) > 0 {
		img, err := readFile(fhs[0])
		if err != nil {
			return f, err
		}
		f.Image = &img
	}
	return f, nil
}

func savedStatus(id string) int {
	if id == "" {
		return fiber.StatusCreated
	}
	return fiber.StatusOK
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	cats, err := h.service.Categories(c.UserContext())
	if err != nil {
		return h.resp.Fail(c, err, "categoriesLoadFailed")
	}
	return c.JSON(fiber.Map{"data": cats})
}

func (h *Handler) saveCategory(c *fiber.Ctx) error {
	form, err := readImageForm(c)
	if err != nil {
		return badBody(c, err)
	}
	id := c.Params("id")
	cat, err := h.service.SaveCategory(c.UserContext(), id, form)
	if err != nil {
		return h.resp.Fail(c, err, "error")
	}
	return h.resp.OK(c, savedStatus(id), fiber.Map{"data": cat}, "saved")
}

func (h *Handler) deleteCategory(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.UserContext(), c.Params("id")); err != nil {
		return h.resp.Fail(c, err, "error")
	}
	return h.resp.OK(c, fiber.StatusOK, nil, "deleted")
}

func (h *Handler) getSubcategories(c *fiber.Ctx) error {
	subs, err := h.service.Subcategories(c.UserContext(), c.Query("category"))
	if err != nil {
		return h.resp.Fail(c, err, "categoriesLoadFailed")
	}
	return c.JSON(fiber.Map{"data": subs})
}

func (h *Handler) saveSubcategory(c *fiber.Ctx) error {
	payload := new(SubcategoryInput)
	if err := c.BodyParser(payload); err != nil {
		return badBody(c, err)
	}
	id := c.Params("id")
	sub, err := h.service.SaveSubcategory(c.UserContext(), id, *payload)
	if err != nil {
		return h.resp.Fail(c, err, "error")
	}
	return h.resp.OK(c, savedStatus(id), fiber.Map{"data": sub}, "saved")
}

func (h *Handler) deleteSubcategory(c *fiber.Ctx) error {
	if err := h.service.DeleteSubcategory(c.UserContext(), c.Params("id")); err != nil {
		return h.resp.Fail(c, err, "error")
	}
	return h.resp.OK(c, fiber.StatusOK, nil, "deleted")
}

func (h *Handler) getBrands(c *fiber.Ctx) error {
	brands, err := h.service.Brands(c.UserContext())
	if err != nil {
		return h.resp.Fail(c, err, "brandsLoadFailed")
	}
	return c.JSON(fiber.Map{"data": brands})
}

func (h *Handler) saveBrand(c *fiber.Ctx) error {
	form, err := readImageForm(c)
	if err != nil {
		return badBody(c, err)
	}
	id := c.Params("id")
	brand, err := h.service.SaveBrand(c.UserContext(), id, form)
	if err != nil {
		return h.resp.Fail(c, err, "error")
	}
	return h.resp.OK(c, savedStatus(id), fiber.Map{"data": brand}, "saved")
}

func (h *Handler) deleteBrand(c *fiber.Ctx) error {
	if err := h.service.DeleteBrand(c.UserContext(), c.Params("id")); err != nil {
		return h.resp.Fail(c, err, "error")
	}
	return h.resp.OK(c, fiber.StatusOK, nil, "deleted")
}

// orders

func (h *Handler) getOrders(c *fiber.Ctx) error {
	res, err := h.service.Orders(c.UserContext(), queryFrom(c), c.Query("status"))
	if err != nil {
		return h.resp.Fail(c, err, "ordersLoadFailed")
	}
	lang := session.Lang(c)
	views := make([]order.View, 0, len(res.Data))
	for _, o := range res.Data {
		views = append(views, order.NewView(o, lang))
	}
	return c.JSON(fiber.Map{"data": views, "results": len(views), "pagination": res.PaginationResult})
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	o, err := h.service.Order(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.resp.Fail(c, err, "ordersLoadFailed")
	}
	return c.JSON(fiber.Map{"data": order.NewView(o, session.Lang(c))})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateOrderStatus(c *fiber.Ctx) error {
	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return badBody(c, err)
	}
	o, err := h.service.UpdateOrderStatus(c.UserContext(), c.Params("id"), payload.Status)
	return h.orderUpdated(c, o, err)
}

func (h *Handler) markPaid(c *fiber.Ctx) error {
	o, err := h.service.MarkPaid(c.UserContext(), c.Params("id"))
	return h.orderUpdated(c, o, err)
}

func (h *Handler) markDelivered(c *fiber.Ctx) error {
	o, err := h.service.MarkDelivered(c.UserContext(), c.Params("id"))
	return h.orderUpdated(c, o, err)
}

func (h *Handler) orderUpdated(c *fiber.Ctx, o order.Order, err error) error {
	if err != nil {
		return h.resp.Fail(c, err, "error")
	}
	return h.resp.OK(c, fiber.StatusOK, fiber.Map{"data": order.NewView(o, session.Lang(c))}, "orderUpdated")
}

func (h *Handler) deleteOrder(c *fiber.Ctx) error {
	if err := h.service.DeleteOrder(c.UserContext(), c.Params("id")); err != nil {
		return h.resp.Fail(c, err, "error")
	}
	return h.resp.OK(c, fiber.StatusOK, nil, "deleted")
}

// users

func (h *Handler) getUsers(c *fiber.Ctx) error {
	res, err := h.service.Users(c.UserContext(), queryFrom(c), c.Query("role"))
	if err != nil {
		return h.resp.Fail(c, err, "usersLoadFailed")
	}
	return c.JSON(fiber.Map{"data": res.Data, "results": res.Results, "pagination": res.PaginationResult})
}

func (h *Handler) getUser(c *fiber.Ctx) error {
	u, err := h.service.User(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.resp.Fail(c, err, "usersLoadFailed")
	}
	return c.JSON(fiber.Map{"data": u})
}

func (h *Handler) updateUser(c *fiber.Ctx) error {
	payload := new(UserInput)
	if err := c.BodyParser(payload); err != nil {
		return badBody(c, err)
	}
	u, err := h.service.UpdateUser(c.UserContext(), c.Params("id"), *payload)
	if err != nil {
		return h.resp.Fail(c, err, "error")
	}
	return h.resp.OK(c, fiber.StatusOK, fiber.Map{"data": u}, "updated")
}

type roleRequest struct {
	Role string `json:"role"`
}

func (h *Handler) changeRole(c *fiber.Ctx) error {
	payload := new(roleRequest)
	if err := c.BodyParser(payload); err != nil {
		return badBody(c, err)
	}
	u, err := h.service.ChangeRole(c.UserContext(), c.Params("id"), payload.Role)
	if err != nil {
		return h.resp.Fail(c, err, "error")
	}
	return h.resp.OK(c, fiber.StatusOK, fiber.Map{"data": u}, "roleChanged")
}

func (h *Handler) deleteUser(c *fiber.Ctx) error {
	if err := h.service.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return h.resp.Fail(c, err, "error")
	}
	return h.resp.OK(c, fiber.StatusOK, nil, "userDeleted")
}

// reviews

func (h *Handler) getReviews(c *fiber.Ctx) error {
	page, err := h.service.Reviews(c.UserContext(), queryFrom(c), c.Query("product"), c.QueryInt("ratings", 0))
	if err != nil {
		return h.resp.Fail(c, err, "reviewsLoadFailed")
	}
	return c.JSON(fiber.Map{"data": page.Reviews, "summary": page.Summary})
}

func (h *Handler) approveReview(c *fiber.Ctx) error {
	r, err := h.service.ApproveReview(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.resp.Fail(c, err, "reviewFailed")
	}
	return h.resp.OK(c, fiber.StatusOK, fiber.Map{"data": r}, "updated")
}

func (h *Handler) deleteReview(c *fiber.Ctx) error {
	if err := h.service.DeleteReview(c.UserContext(), c.Params("id")); err != nil {
		return h.resp.Fail(c, err, "reviewFailed")
	}
	return h.resp.OK(c, fiber.StatusOK, nil, "reviewDeleted")
}
