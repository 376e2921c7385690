package synth

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fwojciec/sitegraph"
)

// categoryTests returns the whole-site tests for the site's category.
func categoryTests(s *sitegraph.Structure) []*sitegraph.TestCase {
	start := []sitegraph.Action{navigate(s.URL), wait()}
	tc := func(title, desc string, steps, expected []string) *sitegraph.TestCase {
		return &sitegraph.TestCase{
			Title:           title,
			Description:     desc,
			Steps:           append([]string{"Navigate to " + s.URL}, steps...),
			ExpectedResults: expected,
			Actions:         slices.Clone(start),
		}
	}

	switch s.Category {
	case sitegraph.CategoryECommerce:
		return []*sitegraph.TestCase{
			tc("Product Search Test",
				"Verify that the product search functionality works correctly",
				[]string{"Locate the search box", "Enter a common product name (e.g., 'shirt')", "Submit the search"},
				[]string{"Search results page loads", "Results related to the search term are displayed", "Number of results is indicated"}),
			tc("Add Product to Cart Test",
				"Verify that adding a product to the shopping cart works correctly",
				[]string{"Browse to a product page", "Click the 'Add to Cart' button", "Navigate to the shopping cart"},
				[]string{"Product is added to the cart", "Cart count is updated", "Product appears correctly in the cart with the right quantity and price"}),
		}
	case sitegraph.CategoryBlog:
		return []*sitegraph.TestCase{
			tc("Blog Post Navigation Test",
				"Verify that navigation between blog posts works correctly",
				[]string{"Click on a blog post title", "Verify the post content loads", "Navigate back to the blog list"},
				[]string{"Blog post opens correctly", "Post content is displayed", "Navigation back to the list works"}),
		}
	case sitegraph.CategoryNews:
		return []*sitegraph.TestCase{
			tc("News Category Navigation Test",
				"Verify that navigation between news categories works correctly",
				[]string{"Identify and click on a news category (e.g., 'Sports', 'Politics')", "Verify that category-specific news loads", "Navigate back to the main page"},
				[]string{"Category page loads correctly", "News articles in the selected category are displayed", "Navigation back to main page works"}),
		}
	case sitegraph.CategoryPortfolio:
		return []*sitegraph.TestCase{
			tc("Portfolio Project Showcase Test",
				"Verify that portfolio projects are displayed correctly",
				[]string{"Navigate to the projects or portfolio section", "Click on a specific project", "Examine project details"},
				[]string{"Portfolio section loads correctly", "Projects are displayed with thumbnails/titles", "Project detail view shows correct information", "Images and media load properly"}),
		}
	case sitegraph.CategoryCorporate:
		return []*sitegraph.TestCase{
			tc("Contact Form Validation Test",
				"Verify that the contact form validates inputs correctly",
				[]string{"Navigate to the contact page", "Submit the form without filling any fields", "Observe validation errors"},
				[]string{"Form submission is prevented", "Validation errors are displayed for required fields", "Error messages are clear and descriptive"}),
		}
	case sitegraph.CategoryEducational:
		return []*sitegraph.TestCase{
			tc("Course Catalog Test",
				"Verify that the course catalog displays correctly",
				[]string{"Navigate to the course catalog or courses section", "Apply filters if available (e.g., by subject)", "Click on a specific course"},
				[]string{"Course catalog loads correctly", "Filtering works as expected", "Course details page displays complete information", "Navigation between catalog and course details works"}),
		}
	}

	tests := []*sitegraph.TestCase{
		tc("Main Menu Navigation Test",
			"Verify that all main menu items navigate to the correct pages",
			[]string{"Identify all main menu items", "Click on each menu item one by one", "Verify each destination page loads", "Navigate back to the homepage after each verification"},
			[]string{"All menu items are clickable", "Destination pages load correctly", "Navigation back to homepage works"}),
	}
	if s.HasForms() {
		tests = append(tests, tc("Form Submission Test",
			"Verify that forms can be submitted correctly",
			[]string{"Navigate to a page with a form", "Fill in all required fields with valid data", "Submit the form"},
			[]string{"Form accepts the input data", "Submission is successful", "Appropriate confirmation or next step is displayed"}))
	}
	return tests
}

// contentTests returns the tests gated on the page's own elements and the
// site's category.
func contentTests(s *sitegraph.Structure, page *sitegraph.Page) []*sitegraph.TestCase {
	start := append([]sitegraph.Action{navigate(page.URL), wait()}, assertTitle(page.Title)...)
	tc := func(title, desc string, steps, expected []string) *sitegraph.TestCase {
		return &sitegraph.TestCase{
			Title:           title + " for " + page.Title,
			Description:     fmt.Sprintf(desc, page.URL),
			Steps:           append([]string{"Navigate to " + page.URL}, steps...),
			ExpectedResults: expected,
			Actions:         slices.Clone(start),
		}
	}

	var tests []*sitegraph.TestCase
	if page.Forms > 0 {
		tests = append(tests, tc("Form Submission Test",
			"Verify that forms on the page at %s can be submitted correctly",
			[]string{"Identify the form on the page", "Fill in all required fields with valid test data", "Submit the form"},
			[]string{"Form accepts the input data", "Form validation works correctly", "Form submission is successful", "Appropriate confirmation or next step is displayed"}))
	}
	if len(page.Links) > 3 {
		tests = append(tests, tc("Links Test",
			"Verify that all important links on the page at %s work correctly",
			[]string{"Identify all important navigation links", "Click on each link one by one", "Verify each destination page loads", "Navigate back to the original page after each verification"},
			[]string{"All links are clickable", "Destination pages load without errors", "Navigation back to the original page works"}))
	}
	if page.Inputs > 0 {
		tests = append(tests, tc("Input Validation Test",
			"Verify that input fields on the page at %s validate correctly",
			[]string{"Identify all input fields", "Test each input field with valid data", "Test each input field with invalid data", "Observe validation behavior"},
			[]string{"Input fields accept valid data", "Input fields reject invalid data", "Validation errors are displayed appropriately", "Error messages are clear and descriptive"}))
	}
	if page.Buttons > 0 {
		tests = append(tests, tc("Button Functionality Test",
			"Verify that buttons on the page at %s function correctly",
			[]string{"Identify all actionable buttons", "Click each button one by one", "Observe the response to each button click"},
			[]string{"All buttons are clickable", "Each button triggers the expected action", "UI responds appropriately to button interactions", "No errors occur during button operations"}))
	}

	text := strings.ToLower(page.Text)
	switch s.Category {
	case sitegraph.CategoryECommerce:
		switch {
		case containsAny(text, "add to cart", "buy now", "price", "product"):
			tests = append(tests, tc("Product Page Test",
				"Verify that the product page at %s functions correctly",
				[]string{"Verify product information is displayed correctly", "Select product options if available (size, color, etc.)", "Click the 'Add to Cart' button", "Verify the product was added to the cart"},
				[]string{"Product information is accurate and complete", "Product options can be selected", "Product can be added to cart", "Cart is updated with the correct product"}))
		case containsAny(text, "cart", "basket", "checkout"):
			tests = append(tests, tc("Cart/Checkout Test",
				"Verify that the cart/checkout page at %s functions correctly",
				[]string{"Verify cart contents are displayed correctly", "Update product quantities", "Proceed to checkout", "Fill in required checkout information"},
				[]string{"Cart contents are accurate", "Product quantities can be updated", "Prices and totals are calculated correctly", "Checkout process works correctly"}))
		}
	case sitegraph.CategoryBlog, sitegraph.CategoryNews:
		tests = append(tests, tc("Content Display Test",
			"Verify that the content on the page at %s displays correctly",
			[]string{"Verify all content elements load correctly", "Check images, videos, and embedded content", "Test social sharing features if available", "Test comments section if available"},
			[]string{"All content displays correctly", "Images and media load properly", "Interactive elements work as expected", "Content is readable and properly formatted"}))
	}
	return tests
}
